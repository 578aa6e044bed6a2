package index

import "sort"

// Index maps a project-relative file path to the digest of the content that
// last passed every lint in its chain. Absence means never verified clean.
type Index struct {
	Files map[string]string `json:"files"`
}

// New returns an empty index.
func New() *Index {
	return &Index{Files: make(map[string]string)}
}

// Get returns the recorded digest for path.
func (ix *Index) Get(path string) (string, bool) {
	h, ok := ix.Files[path]
	return h, ok
}

// Set records digest as the clean state of path, replacing any previous entry.
func (ix *Index) Set(path, digest string) {
	if ix.Files == nil {
		ix.Files = make(map[string]string)
	}
	ix.Files[path] = digest
}

// Matches reports whether path is recorded with exactly digest.
func (ix *Index) Matches(path, digest string) bool {
	h, ok := ix.Files[path]
	return ok && h == digest
}

// Len returns the number of indexed files.
func (ix *Index) Len() int {
	return len(ix.Files)
}

// Paths returns the indexed paths in sorted order.
func (ix *Index) Paths() []string {
	paths := make([]string, 0, len(ix.Files))
	for p := range ix.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
