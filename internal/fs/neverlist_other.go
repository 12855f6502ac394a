//go:build !windows

package fs

// neverListed reports entries kept out of every panel. Only Windows has
// such entries.
func neverListed(string) bool {
	return false
}
