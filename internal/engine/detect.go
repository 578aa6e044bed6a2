package engine

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/bianoble/blaze/internal/digest"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/walk"
	"golang.org/x/sync/errgroup"
)

// Detector splits one extension's files into clean and dirty sets.
type Detector struct {
	Walker *walk.Walker

	// Jobs bounds concurrent hashing. Zero or less means runtime.NumCPU().
	Jobs int
}

// Detect walks the tree for files with extension ext and compares their
// digests with old. Unchanged files are recorded in next immediately and
// returned as clean; new or changed files are returned as dirty.
func (d *Detector) Detect(ctx context.Context, ext string, old, next *index.Index) (clean, dirty []string, err error) {
	files, err := d.Walker.Files(ext)
	if err != nil {
		return nil, nil, err
	}

	hashes, err := hashAll(ctx, d.Walker.Root(), files, d.Jobs)
	if err != nil {
		return nil, nil, err
	}

	for i, path := range files {
		if old.Matches(path, hashes[i]) {
			next.Set(path, hashes[i])
			clean = append(clean, path)
		} else {
			dirty = append(dirty, path)
		}
	}
	return clean, dirty, nil
}

// hashAll digests root-relative paths concurrently. Results are positional
// so callers see the same order they passed in.
func hashAll(ctx context.Context, root string, paths []string, jobs int) ([]string, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	hashes := make([]string, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			h, err := digest.File(filepath.Join(root, path))
			if err != nil {
				return err
			}
			hashes[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashes, nil
}
