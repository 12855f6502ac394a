package fs

// ParentName is the name of the synthetic entry that leads one level up.
const ParentName = ".."

// Entry represents a single file or directory on disk. Name is NFC
// normalized for display; FullPath keeps the on-disk bytes.
type Entry struct {
	Name     string
	FullPath string
	IsDir    bool
}
