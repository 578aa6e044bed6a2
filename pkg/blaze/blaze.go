// Package blaze provides the public Go library API for blaze.
//
// blaze is an incremental lint runner. It remembers the content digest of
// every file that passed its lint chain, and on the next run lints only the
// files that are new, changed, or failed last time.
//
// # Basic Usage
//
//	client, err := blaze.New(blaze.Options{ProjectRoot: "/path/to/project"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Lint changed files and save the new index
//	result, err := client.Run(ctx)
//
//	// List changed files without linting
//	check, err := client.Check(ctx)
package blaze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/engine"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/lint"
)

// Options configures a blaze client.
type Options struct {
	// ProjectRoot is the directory to lint. Default: ".".
	ProjectRoot string

	// ConfigPath is the lint config file. If empty, it is discovered under
	// <ProjectRoot>/blaze (see config.Discover).
	ConfigPath string

	// IndexPath is the index file. Default: <ProjectRoot>/blaze/file_index.json.
	IndexPath string

	// Jobs bounds concurrent hashing. Zero means one per CPU.
	Jobs int

	// DefaultTimeout applies to lints without their own timeout.
	DefaultTimeout time.Duration

	// Runner launches lint processes. Default: ExecRunner{}.
	Runner Runner

	// Reporter receives progress. Optional.
	Reporter Reporter
}

// Client is the main entry point for the blaze library.
type Client struct {
	projectRoot    string
	configPath     string
	indexPath      string
	jobs           int
	defaultTimeout time.Duration
	runner         lint.Runner
	reporter       engine.Reporter
}

// New creates a Client. It fails if no config path is given and none can
// be discovered.
func New(opts Options) (*Client, error) {
	root := opts.ProjectRoot
	if root == "" {
		root = "."
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		found, err := config.Discover(root)
		if errors.Is(err, config.ErrNotFound) {
			return nil, fmt.Errorf("%w in %s — run 'blaze init' to create one", err, filepath.Join(root, config.DefaultDir))
		}
		if err != nil {
			return nil, err
		}
		cfgPath = found
	}

	idxPath := opts.IndexPath
	if idxPath == "" {
		idxPath = filepath.Join(root, index.DefaultPath)
	}

	runner := opts.Runner
	if runner == nil {
		runner = lint.ExecRunner{}
	}

	return &Client{
		projectRoot:    root,
		configPath:     cfgPath,
		indexPath:      idxPath,
		jobs:           opts.Jobs,
		defaultTimeout: opts.DefaultTimeout,
		runner:         runner,
		reporter:       opts.Reporter,
	}, nil
}

// ConfigPath returns the resolved config path.
func (c *Client) ConfigPath() string {
	return c.configPath
}

// IndexPath returns the resolved index path.
func (c *Client) IndexPath() string {
	return c.indexPath
}

// ProjectRoot returns the directory being linted.
func (c *Client) ProjectRoot() string {
	return c.projectRoot
}

func (c *Client) engine() *engine.Engine {
	return &engine.Engine{
		Root:           c.projectRoot,
		Runner:         c.runner,
		Jobs:           c.jobs,
		DefaultTimeout: c.defaultTimeout,
		Reporter:       c.reporter,
	}
}

// LoadConfig reads and validates the lint config.
func (c *Client) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", c.configPath, err)
	}
	return cfg, nil
}

// LoadIndex reads the index, empty if it does not exist yet.
func (c *Client) LoadIndex() (*index.Index, error) {
	return index.Load(c.indexPath)
}

// Run lints changed files and replaces the index with the files that
// passed. On any error the existing index is left untouched.
func (c *Client) Run(ctx context.Context) (*RunResult, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}
	old, err := c.LoadIndex()
	if err != nil {
		return nil, err
	}

	result, err := c.engine().Run(ctx, *cfg, old)
	if err != nil {
		return nil, err
	}

	if err := index.Save(c.indexPath, result.Index); err != nil {
		return nil, fmt.Errorf("saving index: %w", err)
	}
	return result, nil
}

// Check lists changed files per extension without linting or saving.
func (c *Client) Check(ctx context.Context) (*CheckResult, error) {
	cfg, err := c.LoadConfig()
	if err != nil {
		return nil, err
	}
	old, err := c.LoadIndex()
	if err != nil {
		return nil, err
	}
	return c.engine().Check(ctx, *cfg, old)
}

// Clean removes the index so the next run lints every file.
func (c *Client) Clean() error {
	return index.Remove(c.indexPath)
}
