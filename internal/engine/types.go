package engine

import (
	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/lint"
)

// Reporter receives progress from a run. All methods are called from the
// goroutine driving the run, in pipeline order.
type Reporter interface {
	lint.Observer

	// Detected is called once per extension after dirty-file detection.
	Detected(ext string, clean, dirty int)

	// Committed is called once per extension with the files that passed
	// every stage and were written into the new index.
	Committed(ext string, files []string)
}

// ExtensionResult holds the outcome of one extension's pipeline.
type ExtensionResult struct {
	Ext string

	// Clean files were unchanged since the last run and carried forward
	// without linting.
	Clean []string

	// Dirty files were new or changed and entered the lint chain.
	Dirty []string

	Stages []lint.StageResult

	// Committed files survived every stage and were re-hashed into the
	// new index.
	Committed []string
}

// Dropped returns the dirty files some stage reported on.
func (r ExtensionResult) Dropped() []string {
	var dropped []string
	for _, s := range r.Stages {
		dropped = append(dropped, s.Dropped...)
	}
	return dropped
}

// RunResult holds the outcome of a full run.
type RunResult struct {
	Extensions []ExtensionResult

	// Index is the new index. It has not been saved.
	Index *index.Index
}

// Totals sums clean, dirty and dropped counts over all extensions.
func (r *RunResult) Totals() (clean, dirty, dropped int) {
	for _, ext := range r.Extensions {
		clean += len(ext.Clean)
		dirty += len(ext.Dirty)
		dropped += len(ext.Dropped())
	}
	return clean, dirty, dropped
}

// CheckResult holds the outcome of a detection-only pass.
type CheckResult struct {
	Clean bool

	// Dirty maps an extension to the files that would be linted.
	Dirty map[string][]string
}

// InfoResult holds display information for the info command.
type InfoResult struct {
	Version    string
	ConfigPath string
	IndexPath  string
	Root       string
	Indexed    int
	Filetypes  []FiletypeInfo
	Ignore     []string
}

// FiletypeInfo describes one configured extension.
type FiletypeInfo struct {
	Ext   string
	Lints []string
}

// noopReporter discards progress.
type noopReporter struct{}

func (noopReporter) StageStarted(string, config.Lint, int) {}
func (noopReporter) StageFinished(string, lint.StageResult) {}
func (noopReporter) Detected(string, int, int) {}
func (noopReporter) Committed(string, []string) {}
