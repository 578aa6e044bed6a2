package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/lint"
	"github.com/bianoble/blaze/internal/walk"
)

// Engine drives one lint run: detect, lint chain, commit, per extension.
type Engine struct {
	// Root is the project directory. Index paths are relative to it and
	// lints run inside it.
	Root string

	Runner lint.Runner

	// Jobs bounds concurrent hashing.
	Jobs int

	// DefaultTimeout applies to lints without their own timeout.
	DefaultTimeout time.Duration

	Reporter Reporter
}

// Run processes every configured extension in sorted order and returns the
// new index. The caller saves it; on error nothing should be saved so the
// previous index stays authoritative.
func (e *Engine) Run(ctx context.Context, cfg config.Config, old *index.Index) (*RunResult, error) {
	rep := e.reporter()
	det := &Detector{Walker: walk.New(e.Root, cfg.GlobalIgnore), Jobs: e.Jobs}
	chain := &lint.Chain{
		Runner:         e.Runner,
		Dir:            e.Root,
		DefaultTimeout: e.DefaultTimeout,
		Observer:       rep,
	}

	next := index.New()
	result := &RunResult{Index: next}

	for _, ext := range config.Extensions(&cfg) {
		clean, dirty, err := det.Detect(ctx, ext, old, next)
		if err != nil {
			return nil, fmt.Errorf("detecting changed .%s files: %w", ext, err)
		}
		rep.Detected(ext, len(clean), len(dirty))

		passed, stages, err := chain.Resolve(ctx, ext, cfg.Filetypes[ext], dirty)
		if err != nil {
			return nil, err
		}

		// Lints may rewrite files they fix, so survivors are hashed again
		// rather than reusing the detection digest.
		hashes, err := hashAll(ctx, e.Root, passed, e.Jobs)
		if err != nil {
			return nil, fmt.Errorf("hashing linted .%s files: %w", ext, err)
		}
		for i, path := range passed {
			next.Set(path, hashes[i])
		}
		rep.Committed(ext, passed)

		result.Extensions = append(result.Extensions, ExtensionResult{
			Ext:       ext,
			Clean:     clean,
			Dirty:     dirty,
			Stages:    stages,
			Committed: passed,
		})
	}

	return result, nil
}

func (e *Engine) reporter() Reporter {
	if e.Reporter == nil {
		return noopReporter{}
	}
	return e.Reporter
}
