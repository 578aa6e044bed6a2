package config

import "time"

// Config represents the lint configuration resource (blaze/lint_config.json).
type Config struct {
	// Filetypes maps a file extension (no leading dot) to its lint chain.
	// The order of each chain is the execution order.
	Filetypes map[string][]Lint `yaml:"filetypes"`

	// GlobalIgnore lists file and directory names skipped during traversal.
	// Entries match a base name exactly, never a path.
	GlobalIgnore []string `yaml:"global_ignore,omitempty"`
}

// Lint defines one external lint command in a chain.
type Lint struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`

	// Timeout is an optional Go duration ("30s", "2m"). Empty means no limit.
	Timeout string `yaml:"timeout,omitempty"`
}

// TimeoutDuration returns the parsed timeout, or zero when none is set.
// Validate guarantees the value parses for a loaded config.
func (l Lint) TimeoutDuration() time.Duration {
	if l.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 0
	}
	return d
}
