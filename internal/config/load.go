package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a lint configuration file.
// JSON and YAML documents are both accepted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &cfg, nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Config for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(cfg *Config) []string {
	var errs []string

	for _, ext := range Extensions(cfg) {
		if strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("filetype '%s': extension must not start with '.' — use '%s'", ext, strings.TrimPrefix(ext, ".")))
		}

		for i, l := range cfg.Filetypes[ext] {
			prefix := fmt.Sprintf("filetype '%s' lint[%d]", ext, i)
			if l.Name != "" {
				prefix = fmt.Sprintf("filetype '%s' lint '%s'", ext, l.Name)
			}

			if l.Name == "" {
				errs = append(errs, fmt.Sprintf("%s: 'name' is required", prefix))
			}
			if l.Command == "" {
				errs = append(errs, fmt.Sprintf("%s: 'command' is required", prefix))
			}
			if l.Timeout != "" {
				d, err := time.ParseDuration(l.Timeout)
				if err != nil {
					errs = append(errs, fmt.Sprintf("%s: invalid timeout '%s' — use a duration like '30s' or '2m'", prefix, l.Timeout))
				} else if d < 0 {
					errs = append(errs, fmt.Sprintf("%s: timeout must not be negative", prefix))
				}
			}
		}
	}

	for i, name := range cfg.GlobalIgnore {
		switch {
		case name == "":
			errs = append(errs, fmt.Sprintf("global_ignore[%d]: empty name", i))
		case strings.ContainsAny(name, `/\`):
			errs = append(errs, fmt.Sprintf("global_ignore[%d]: '%s' is a path — entries match file or directory names only", i, name))
		}
	}

	return errs
}

// Extensions returns the configured extensions in sorted order.
func Extensions(cfg *Config) []string {
	exts := make([]string, 0, len(cfg.Filetypes))
	for ext := range cfg.Filetypes {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
