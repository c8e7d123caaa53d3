// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package venv manages the project's Python virtual environment: creation,
// pip bootstrap, dependency installation, and removal.
//
// The environment directory is owned by the venv tool; pyrig only ever
// checks its existence, never its contents. Creation is idempotent by
// directory presence.
package venv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/jeranaias/pyrig/internal/util"
)

// Env is a virtual environment rooted at Dir.
type Env struct {
	// Dir is the environment directory.
	Dir string
}

// New returns an Env for the given directory.
func New(dir string) *Env {
	return &Env{Dir: dir}
}

// Exists reports whether the environment directory is present. Contents are
// never validated.
func (e *Env) Exists() bool {
	info, err := os.Stat(e.Dir)
	return err == nil && info.IsDir()
}

// ToolPath returns the path of a tool inside the environment, accounting
// for the bin/Scripts layout difference between platforms.
func (e *Env) ToolPath(tool string) string {
	sub := "bin"
	if runtime.GOOS == "windows" {
		sub = "Scripts"
	}
	return filepath.Join(e.Dir, sub, tool)
}

// Python returns the path of the environment's interpreter.
func (e *Env) Python() string {
	return e.ToolPath("python")
}

// Pip returns the path of the environment's pip.
func (e *Env) Pip() string {
	return e.ToolPath("pip")
}

// Create creates the environment with `<python> -m venv` and then upgrades
// pip inside it. Callers are expected to check Exists first; failure of
// either child process is fatal to the run.
func (e *Env) Create(ctx context.Context, python string) error {
	fmt.Println("Creating virtual environment...")
	if err := run(ctx, python, "-m", "venv", e.Dir); err != nil {
		return fmt.Errorf("failed to create virtual environment: %w", err)
	}

	fmt.Println("Upgrading pip...")
	if err := run(ctx, e.Python(), "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}
	return nil
}

// Install installs dependencies from requirementsFile with the
// environment's pip. A missing requirements file is synthesized empty
// first; the install still runs so pip failures surface even for an empty
// set.
func (e *Env) Install(ctx context.Context, requirementsFile string) error {
	if _, err := os.Stat(requirementsFile); os.IsNotExist(err) {
		fmt.Printf("%s not found. Creating an empty one...\n", filepath.Base(requirementsFile))
		if err := util.AtomicWriteFile(requirementsFile, nil, 0644); err != nil {
			return fmt.Errorf("failed to create requirements file: %w", err)
		}
	}

	fmt.Println("Installing requirements...")
	if err := run(ctx, e.Pip(), "install", "-r", requirementsFile); err != nil {
		return fmt.Errorf("failed to install requirements: %w", err)
	}
	return nil
}

// Remove deletes the environment directory recursively.
func (e *Env) Remove() error {
	if err := os.RemoveAll(e.Dir); err != nil {
		return fmt.Errorf("failed to remove virtual environment: %w", err)
	}
	return nil
}

// run executes a child process with inherited stdio, blocking until it
// exits.
func run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
