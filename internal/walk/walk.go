// Package walk enumerates project files for the lint pipeline.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walker traverses a project tree with an explicit work-list, so tree depth
// is bounded by memory rather than by the call stack.
type Walker struct {
	root   string
	ignore map[string]bool
}

// New creates a Walker rooted at root. Any file or directory whose base name
// appears in ignore is skipped; ignored directories are not entered.
func New(root string, ignore []string) *Walker {
	set := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		set[name] = true
	}
	return &Walker{root: root, ignore: set}
}

// Root returns the directory the walker starts from.
func (w *Walker) Root() string {
	return w.root
}

// All returns every regular file under the root as a root-relative path.
// Sibling order is not stable.
func (w *Walker) All() ([]string, error) {
	var files []string
	pending := []string{"."}

	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := os.ReadDir(filepath.Join(w.root, dir))
		if err != nil {
			return nil, fmt.Errorf("reading directory %s: %w", dir, err)
		}

		for _, e := range entries {
			if w.ignore[e.Name()] {
				continue
			}
			rel := filepath.Join(dir, e.Name())

			switch {
			case e.IsDir():
				pending = append(pending, rel)
			case e.Type().IsRegular():
				files = append(files, rel)
			case e.Type()&fs.ModeSymlink != 0:
				// Symlinked files count; symlinked directories are never
				// entered so link cycles cannot loop the walk.
				info, statErr := os.Stat(filepath.Join(w.root, rel))
				if statErr == nil && info.Mode().IsRegular() {
					files = append(files, rel)
				}
			}
		}
	}

	return files, nil
}

// Files returns the regular files whose extension equals ext exactly.
// An empty ext selects files without an extension.
func (w *Walker) Files(ext string) ([]string, error) {
	all, err := w.All()
	if err != nil {
		return nil, err
	}
	var matched []string
	for _, rel := range all {
		if Ext(filepath.Base(rel)) == ext {
			matched = append(matched, rel)
		}
	}
	return matched, nil
}

// Ext returns the extension of a file name without the leading dot.
// Names with no dot, or whose only dot is the first character
// (".bashrc"), have no extension.
func Ext(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return ""
	}
	return name[i+1:]
}
