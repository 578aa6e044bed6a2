// Package digest computes the content digests recorded in the file index.
package digest

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// File returns the hex digest of the file at path.
// An unopenable or unreadable file is an error; callers treat it as fatal
// for the run because skipping it would leave the index lying.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s to hash: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("reading %s to hash: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

