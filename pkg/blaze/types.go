package blaze

import (
	"github.com/bianoble/blaze/internal/config"
	"github.com/bianoble/blaze/internal/engine"
	"github.com/bianoble/blaze/internal/index"
	"github.com/bianoble/blaze/internal/lint"
)

// Type aliases re-export internal types as the public API.

type Config = config.Config
type Lint = config.Lint
type Index = index.Index

type Runner = lint.Runner
type ExecRunner = lint.ExecRunner
type Output = lint.Output
type LaunchError = lint.LaunchError
type StageResult = lint.StageResult
type Reporter = engine.Reporter
type RunResult = engine.RunResult
type ExtensionResult = engine.ExtensionResult
type CheckResult = engine.CheckResult
