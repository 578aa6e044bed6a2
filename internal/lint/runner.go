// Package lint runs configured lint chains over batches of files.
package lint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// waitDelay bounds how long Run waits for output pipes after the lint
// process exits or is killed, in case it left children holding them.
// Daemon-style lints (eslint_d, dmypy) do this on every run.
const waitDelay = 2 * time.Second

// Runner launches one lint process and waits for it to finish.
// Implementations must return a non-nil error only when the process could
// not be launched or did not complete; a process that runs and exits
// non-zero is a normal result.
type Runner interface {
	Run(ctx context.Context, dir, name string, args []string) (*Output, error)
}

// Output is the captured result of a finished lint process.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Mentions reports whether path occurs anywhere in stdout or stderr.
// This is a plain substring test: "a.py" is also found inside "data.py".
func (o *Output) Mentions(path string) bool {
	return strings.Contains(o.Stdout, path) || strings.Contains(o.Stderr, path)
}

// ExecRunner runs lints as child processes of the current process.
type ExecRunner struct {
	// Env, when non-nil, replaces the inherited environment.
	Env []string
}

// Run executes name with args in dir, capturing stdout and stderr separately.
func (r ExecRunner) Run(ctx context.Context, dir, name string, args []string) (*Output, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.WaitDelay = waitDelay
	if r.Env != nil {
		cmd.Env = r.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			exitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil:
			// The lint itself finished; a leftover child kept the pipes
			// open. Whatever was written before the pipes closed stands.
			exitCode = cmd.ProcessState.ExitCode()
		default:
			return nil, err
		}
	}

	return &Output{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}, nil
}

// LaunchError reports a lint that could not be run to completion.
// It is fatal for the whole run.
type LaunchError struct {
	Lint    string
	Command string
	Err     error
	Hint    string
}

func (e *LaunchError) Error() string {
	msg := fmt.Sprintf("lint '%s': running '%s' failed: %s", e.Lint, e.Command, e.Err)
	if e.Hint != "" {
		msg += " — " + e.Hint
	}
	return msg
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
