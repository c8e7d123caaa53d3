// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package bootstrap sequences a pyrig run: configuration, interpreter
// resolution, optional environment removal, mode dispatch, and cleanup.
//
// Every phase is a blocking call awaited to completion; there is no
// concurrency and no timeout. A failed child process aborts the run
// immediately and its exit status is surfaced to the caller.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeranaias/pyrig/internal/cli"
	"github.com/jeranaias/pyrig/internal/config"
	"github.com/jeranaias/pyrig/internal/python"
	"github.com/jeranaias/pyrig/internal/runner"
	"github.com/jeranaias/pyrig/internal/venv"
)

// TempArtifact is the editor artifact removed from the project directory
// after a successful dispatch.
const TempArtifact = "tempCodeRunnerFile.py"

// ErrEnvMissing is returned by run-only mode when the environment does not
// exist yet. The caller reports it and exits non-zero without side effects.
var ErrEnvMissing = errors.New("virtual environment not found")

// ErrUnknownMode guards the closed mode enum. Unreachable through the
// parser, which only produces the three known modes.
var ErrUnknownMode = errors.New("unknown mode")

// Bootstrap holds the resolved state for one run.
type Bootstrap struct {
	// Dir is the project directory; all configured paths resolve against it.
	Dir string
	// Config is the loaded setup configuration.
	Config *config.Config
	// Python is the interpreter used for environment creation.
	Python string
	// Env is the project's virtual environment.
	Env *venv.Env
}

// New loads the configuration from dir and resolves the interpreter. An
// interpreter miss is recoverable: pyrig warns and falls back to the
// currently available Python. Configuration errors are fatal.
func New(ctx context.Context, dir string) (*Bootstrap, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	b := &Bootstrap{
		Dir:    dir,
		Config: cfg,
		Env:    venv.New(filepath.Join(dir, cfg.VenvDir)),
	}

	path, err := python.Find(ctx, cfg.PythonVersion)
	if err != nil {
		current, curErr := python.Current()
		if curErr != nil {
			return nil, fmt.Errorf("python %s not found and no fallback available: %w", cfg.PythonVersion, curErr)
		}
		cli.Warnf("Could not find python%s. Using current Python: %s", cfg.PythonVersion, current)
		b.Python = current
	} else {
		cli.Phasef("Found Python %s: %s", cfg.PythonVersion, path)
		b.Python = path
	}

	return b, nil
}

// MainFile returns the absolute path of the entry script.
func (b *Bootstrap) MainFile() string {
	return filepath.Join(b.Dir, b.Config.MainFile)
}

// RequirementsFile returns the absolute path of the requirements file.
func (b *Bootstrap) RequirementsFile() string {
	return filepath.Join(b.Dir, b.Config.RequirementsFile)
}

// Run performs the optional clean, dispatches the selected mode, and
// removes the temporary editor artifact. Cleanup is skipped on every error
// path, including run-only's missing-environment early exit.
func (b *Bootstrap) Run(ctx context.Context, args cli.Args) error {
	if args.Clean && b.Env.Exists() {
		cli.Phasef("Removing existing virtual environment...")
		if err := b.Env.Remove(); err != nil {
			return err
		}
	}

	switch args.Mode {
	case cli.ModeInstallOnly:
		if err := b.ensureEnv(ctx); err != nil {
			return err
		}
		if err := b.Env.Install(ctx, b.RequirementsFile()); err != nil {
			return err
		}

	case cli.ModeRunOnly:
		if !b.Env.Exists() {
			return fmt.Errorf("%w: run `pyrig install-only` or `pyrig full` first", ErrEnvMissing)
		}
		if err := runner.Run(ctx, b.Env, b.MainFile(), args.Passthrough); err != nil {
			return err
		}

	case cli.ModeFull:
		if err := b.ensureEnv(ctx); err != nil {
			return err
		}
		if err := b.Env.Install(ctx, b.RequirementsFile()); err != nil {
			return err
		}
		if err := runner.Run(ctx, b.Env, b.MainFile(), args.Passthrough); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownMode, args.Mode)
	}

	b.cleanup()
	return nil
}

// ensureEnv creates the environment if the directory is absent. Presence
// alone makes this idempotent; contents are never validated.
func (b *Bootstrap) ensureEnv(ctx context.Context) error {
	if b.Env.Exists() {
		return nil
	}
	return b.Env.Create(ctx, b.Python)
}

// cleanup deletes the temporary editor artifact if present. Failure is
// logged, never fatal.
func (b *Bootstrap) cleanup() {
	path := filepath.Join(b.Dir, TempArtifact)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := os.Remove(path); err != nil {
		cli.Warnf("Failed to remove %s: %v", TempArtifact, err)
		return
	}
	fmt.Printf("Removed %s.\n", TempArtifact)
}
