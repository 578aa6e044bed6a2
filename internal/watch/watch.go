// Package watch re-triggers lint runs when project files change.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last change before a
// run is triggered.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Ignore lists base names of files and directories never watched.
	Ignore []string

	// Skip lists exact paths whose events are dropped, such as the index
	// file the triggered run itself rewrites.
	Skip []string

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
}

// Watcher batches filesystem events under a root into change callbacks.
type Watcher struct {
	root     string
	ignore   map[string]bool
	skip     map[string]bool
	debounce time.Duration
	fsw      *fsnotify.Watcher
}

// New creates a Watcher for root. Call Close when done.
func New(root string, opts Options) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving watch root: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		root:     absRoot,
		ignore:   make(map[string]bool, len(opts.Ignore)),
		skip:     make(map[string]bool, len(opts.Skip)*2),
		debounce: opts.Debounce,
		fsw:      fsw,
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}
	for _, name := range opts.Ignore {
		w.ignore[name] = true
	}
	for _, p := range opts.Skip {
		abs, absErr := filepath.Abs(p)
		if absErr != nil {
			abs = p
		}
		w.skip[abs] = true
		w.skip[abs+".tmp"] = true
	}
	return w, nil
}

// SetIgnore replaces the ignored base names. Watches on directories that
// become ignored are dropped and directories no longer ignored are added.
// Call it before Run or from the onChange callback, never concurrently
// with Run.
func (w *Watcher) SetIgnore(names []string) error {
	w.ignore = make(map[string]bool, len(names))
	for _, name := range names {
		w.ignore[name] = true
	}
	for _, p := range w.fsw.WatchList() {
		if !w.relevant(p) {
			_ = w.fsw.Remove(p)
		}
	}
	return w.addTree(w.root)
}

// Close releases the underlying OS watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run watches until ctx is done, calling onChange after each debounced
// burst of relevant events. onChange runs on the Run goroutine, so at most
// one call is in flight; events arriving meanwhile schedule the next call.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	if err := w.addTree(w.root); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Lstat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						return err
					}
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", w.root, err)

		case <-timer.C:
			onChange()
		}
	}
}

// relevant reports whether an event path should trigger a run.
func (w *Watcher) relevant(path string) bool {
	if w.skip[path] {
		return false
	}
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return false
	}
	for _, part := range strings.Split(rel, string(filepath.Separator)) {
		if w.ignore[part] {
			return false
		}
	}
	return true
}

// addTree registers dir and every non-ignored directory below it.
func (w *Watcher) addTree(dir string) error {
	pending := []string{dir}
	for len(pending) > 0 {
		d := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if err := w.fsw.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}

		entries, err := os.ReadDir(d)
		if err != nil {
			return fmt.Errorf("reading directory %s: %w", d, err)
		}
		for _, e := range entries {
			if e.IsDir() && !w.ignore[e.Name()] {
				pending = append(pending, filepath.Join(d, e.Name()))
			}
		}
	}
	return nil
}
