package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath is the index location relative to the project root.
var DefaultPath = filepath.Join("blaze", "file_index.json")

// Load reads an index file. A missing file is not an error: it yields an
// empty index, which is the state before the first successful run.
func Load(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading index %s: %w", path, err)
	}

	ix := New()
	if err := json.Unmarshal(data, ix); err != nil {
		return nil, fmt.Errorf("parsing index %s: %w", path, err)
	}
	ix.Files = canonical(ix.Files)
	return ix, nil
}

// canonical rewrites keys to the root-relative form the walker produces.
// Indexes written by older releases walked from "." and stored "./a.py".
// When both forms are present the clean key wins.
func canonical(files map[string]string) map[string]string {
	out := make(map[string]string, len(files))
	for path, digest := range files {
		clean := filepath.Clean(path)
		if _, taken := out[clean]; taken && clean != path {
			continue
		}
		out[clean] = digest
	}
	return out
}

// Save writes the index atomically using a temp file and rename.
// The previous file is replaced in full, never merged.
func Save(path string, ix *Index) error {
	if ix.Files == nil {
		ix.Files = make(map[string]string)
	}
	data, err := json.Marshal(ix)
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating index directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp index %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp index to %s: %w", path, err)
	}

	return nil
}

// Remove deletes the index file. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing index %s: %w", path, err)
	}
	return nil
}
