package engine

import (
	"context"
	"fmt"

	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/walk"
)

// Check runs detection only. No lint is started and no index is produced.
func (e *Engine) Check(ctx context.Context, cfg config.Config, old *index.Index) (*CheckResult, error) {
	det := &Detector{Walker: walk.New(e.Root, cfg.GlobalIgnore), Jobs: e.Jobs}
	result := &CheckResult{Clean: true, Dirty: make(map[string][]string)}
	scratch := index.New()

	for _, ext := range config.Extensions(&cfg) {
		_, dirty, err := det.Detect(ctx, ext, old, scratch)
		if err != nil {
			return nil, fmt.Errorf("detecting changed .%s files: %w", ext, err)
		}
		if len(dirty) > 0 {
			result.Dirty[ext] = dirty
			result.Clean = false
		}
	}
	return result, nil
}
