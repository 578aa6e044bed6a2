package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/lint"
	"github.com/bianoble/blaze/pkg/blaze"
	"github.com/mattn/go-isatty"
)

// newClient builds a library client from the global flags.
func newClient() (*blaze.Client, error) {
	timeout, err := parseTimeout()
	if err != nil {
		return nil, err
	}
	return blaze.New(blaze.Options{
		ProjectRoot:    rootDir,
		ConfigPath:     configPath,
		IndexPath:      indexPath,
		Jobs:           jobs,
		DefaultTimeout: timeout,
		Reporter:       &cliReporter{color: useColor()},
	})
}

func parseTimeout() (time.Duration, error) {
	if lintTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(lintTimeout)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid --timeout %q: use a duration like '30s' or '5m'", lintTimeout)
	}
	return d, nil
}

// useColor reports whether stage headers may be colored.
func useColor() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in verbose mode.
func detail(format string, args ...any) {
	if verbose {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// cliReporter prints pipeline progress in the classic blaze format.
type cliReporter struct {
	color bool
}

func (r *cliReporter) StageStarted(ext string, l config.Lint, files int) {
	msg := fmt.Sprintf("Running %s on %d files", l.Name, files)
	if r.color {
		msg = ansiBold + msg + ansiReset
	}
	info("%s", msg)
}

func (r *cliReporter) StageFinished(ext string, res lint.StageResult) {
	if res.Skipped {
		detail("%s skipped: no .%s files left", res.Lint, ext)
		return
	}
	if res.Output == nil {
		return
	}
	// Lint output is the user's feedback, so it is shown even in quiet mode.
	if out := res.Output.Stdout; out != "" {
		fmt.Println(strings.TrimRight(out, "\n"))
	}
	if out := res.Output.Stderr; out != "" {
		fmt.Println(strings.TrimRight(out, "\n"))
	}
	for _, f := range res.Dropped {
		detail("reported  %s", f)
	}
}

func (r *cliReporter) Detected(ext string, clean, dirty int) {
	detail(".%s: %d unchanged, %d to lint", ext, clean, dirty)
}

func (r *cliReporter) Committed(ext string, files []string) {
	for _, f := range files {
		detail("clean     %s", f)
	}
}
