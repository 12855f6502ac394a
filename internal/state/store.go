package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kk-code-lab/fir/internal/logging"
)

// Reducer applies one action to the state. StateReducer is the production
// implementation.
type Reducer interface {
	Reduce(state *State, action Action) (*State, error)
}

// StateStore owns the State. Any goroutine may Dispatch; only Run touches
// the State, and subscribers receive clones.
type StateStore struct {
	reducer Reducer
	actions *mailbox[Action]

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewStateStore(reducer Reducer) *StateStore {
	return &StateStore{
		reducer: reducer,
		actions: newMailbox[Action](),
		subs:    make(map[*Subscription]struct{}),
	}
}

// Dispatch queues an action. It never blocks. Actions from one goroutine are
// applied in the order they were dispatched.
func (s *StateStore) Dispatch(action Action) {
	if action == nil {
		return
	}
	s.actions.push(action)
}

// Subscribe registers a snapshot receiver. Snapshots published after this
// call are delivered in order.
func (s *StateStore) Subscribe() *Subscription {
	sub := &Subscription{store: s, box: newMailbox[State]()}
	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()
	return sub
}

func (s *StateStore) unsubscribe(sub *Subscription) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

func (s *StateStore) publish(state *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		sub.box.push(state.Clone())
	}
}

// Run publishes the initial snapshot and then applies queued actions until
// term fires or an ExitAction arrives.
func (s *StateStore) Run(initial *State, term *Terminator) (Interrupted, error) {
	if initial == nil {
		return NotInterrupted, errors.New("store: nil initial state")
	}
	if term == nil {
		return NotInterrupted, errors.New("store: nil terminator")
	}
	log := logging.For("store")

	state := initial
	s.publish(state)

	for {
		if term.Terminated() {
			return term.Reason(), nil
		}

		action, ok := s.actions.pop()
		if !ok {
			select {
			case <-s.actions.ready():
				continue
			case <-term.Done():
				return term.Reason(), nil
			}
		}

		if _, exit := action.(ExitAction); exit {
			log.Debug("exit requested")
			term.Terminate(UserInterrupt)
			return term.Reason(), nil
		}

		log.WithField("action", fmt.Sprintf("%T", action)).Debug("reduce")
		state = s.apply(state, action)
		s.publish(state)
	}
}

// apply reduces one action and turns a returned error into an error popup.
func (s *StateStore) apply(state *State, action Action) *State {
	next, err := s.reducer.Reduce(state, action)
	if next == nil {
		next = state
	}
	if err != nil {
		logging.For("store").
			WithField("kind", KindOf(err).String()).
			WithError(err).
			Warn("action failed")
		next.showError(err.Error())
	}
	return next
}

// Subscription receives state snapshots from a store.
type Subscription struct {
	store *StateStore
	box   *mailbox[State]
}

// Ready fires after a snapshot has been queued.
func (sub *Subscription) Ready() <-chan struct{} {
	return sub.box.ready()
}

// Next returns the oldest undelivered snapshot.
func (sub *Subscription) Next() (State, bool) {
	return sub.box.pop()
}

// Latest discards everything but the newest snapshot and returns it.
func (sub *Subscription) Latest() (State, bool) {
	pending := sub.box.drain()
	if len(pending) == 0 {
		return State{}, false
	}
	return pending[len(pending)-1], true
}

// Close stops delivery to this subscription.
func (sub *Subscription) Close() {
	sub.store.unsubscribe(sub)
	sub.box.close()
}
