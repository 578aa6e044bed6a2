package lint

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/bianoble/blaze/internal/config"
)

// StageResult records what one lint did to the working set.
type StageResult struct {
	Lint    string
	Input   []string
	Passed  []string
	Dropped []string
	Output  *Output

	// Skipped is set when the working set was already empty and no
	// process was started.
	Skipped bool
}

// Observer receives stage progress. Both methods are called synchronously
// from the goroutine running the chain.
type Observer interface {
	StageStarted(ext string, l config.Lint, files int)
	StageFinished(ext string, res StageResult)
}

// Chain runs ordered lint stages for one extension. Stages are strictly
// sequential and each stage only sees files every earlier stage passed.
type Chain struct {
	Runner Runner

	// Dir is the working directory for lint processes; file arguments are
	// relative to it.
	Dir string

	// DefaultTimeout applies to lints without their own timeout.
	// Zero means no limit.
	DefaultTimeout time.Duration

	Observer Observer
}

// Resolve runs lints in order over files and returns the files that no
// stage reported on, along with one result per configured stage.
func (c *Chain) Resolve(ctx context.Context, ext string, lints []config.Lint, files []string) ([]string, []StageResult, error) {
	working := files
	results := make([]StageResult, 0, len(lints))

	for _, l := range lints {
		if len(working) == 0 {
			res := StageResult{Lint: l.Name, Skipped: true}
			results = append(results, res)
			if c.Observer != nil {
				c.Observer.StageFinished(ext, res)
			}
			continue
		}

		if c.Observer != nil {
			c.Observer.StageStarted(ext, l, len(working))
		}

		res, err := c.stage(ctx, l, working)
		if err != nil {
			return nil, results, err
		}
		results = append(results, res)
		if c.Observer != nil {
			c.Observer.StageFinished(ext, res)
		}
		working = res.Passed
	}

	return working, results, nil
}

func (c *Chain) stage(ctx context.Context, l config.Lint, files []string) (StageResult, error) {
	timeout := l.TimeoutDuration()
	if timeout == 0 {
		timeout = c.DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	args := make([]string, 0, len(l.Args)+len(files))
	args = append(args, l.Args...)
	args = append(args, files...)

	out, err := c.Runner.Run(ctx, c.Dir, l.Command, args)
	if err != nil {
		return StageResult{}, launchError(l, timeout, err)
	}

	res := StageResult{
		Lint:   l.Name,
		Input:  files,
		Output: out,
	}
	for _, f := range files {
		if out.Mentions(f) {
			res.Dropped = append(res.Dropped, f)
		} else {
			res.Passed = append(res.Passed, f)
		}
	}
	return res, nil
}

func launchError(l config.Lint, timeout time.Duration, err error) *LaunchError {
	le := &LaunchError{Lint: l.Name, Command: l.Command, Err: err}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		le.Hint = fmt.Sprintf("timed out after %s", timeout)
	case errors.Is(err, context.Canceled):
		le.Hint = "run was interrupted"
	case errors.Is(err, exec.ErrNotFound):
		le.Hint = fmt.Sprintf("%s not installed", l.Name)
	}
	return le
}
