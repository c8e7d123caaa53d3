// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jeranaias/pyrig/internal/cli"
	"github.com/jeranaias/pyrig/internal/config"
	"github.com/jeranaias/pyrig/internal/python"
	"github.com/jeranaias/pyrig/internal/venv"
)

const (
	statusPass = "pass"
	statusWarn = "warn"
	statusFail = "fail"
)

// minFreeBytes is the free space below which the disk check warns. A fresh
// environment with upgraded pip needs roughly this much.
const minFreeBytes = 100 * 1024 * 1024

// CheckResult is the outcome of one diagnostic.
type CheckResult struct {
	Name    string
	Status  string
	Message string
	Fix     string
}

func (r CheckResult) render() string {
	var tag string
	switch r.Status {
	case statusPass:
		tag = cli.SuccessStyle.Render("[OK]")
	case statusWarn:
		tag = cli.WarningStyle.Render("[!!]")
	default:
		tag = cli.ErrorStyle.Render("[XX]")
	}
	line := fmt.Sprintf("  %s %s: %s", tag, r.Name, r.Message)
	if r.Fix != "" {
		line += "\n       " + cli.DimStyle.Render("-> "+r.Fix)
	}
	return line
}

// runChecks executes every diagnostic against dir. Checks are read-only;
// a missing configuration falls back to defaults instead of creating one.
func runChecks(ctx context.Context, dir string) []CheckResult {
	cfgResult, cfg := checkConfig(dir)

	results := []CheckResult{
		checkOS(),
		cfgResult,
	}

	pyResult, pythonPath := checkInterpreter(ctx, cfg.PythonVersion)
	results = append(results, pyResult)
	if pythonPath != "" {
		results = append(results, checkVenvModule(ctx, pythonPath))
	}

	results = append(results,
		checkEnvironment(dir, cfg),
		checkDisk(dir),
	)
	return results
}

func checkOS() CheckResult {
	return CheckResult{
		Name:    "Operating System",
		Status:  statusPass,
		Message: fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// checkConfig reads the setup configuration without creating it. The
// returned config is the default set when no file exists or it is invalid,
// so later checks always have versions and paths to work with.
func checkConfig(dir string) (CheckResult, *config.Config) {
	path := config.PathJSON(dir)
	if _, err := os.Stat(path); err != nil {
		path = config.PathTOML(dir)
		if _, err := os.Stat(path); err != nil {
			return CheckResult{
				Name:    "Configuration",
				Status:  statusWarn,
				Message: config.FileJSON + " not found",
				Fix:     "pyrig will create one with defaults on first run",
			}, config.Default()
		}
	}

	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return CheckResult{
			Name:    "Configuration",
			Status:  statusFail,
			Message: err.Error(),
			Fix:     "Fix or delete " + filepath.Base(path),
		}, config.Default()
	}
	return CheckResult{
		Name:    "Configuration",
		Status:  statusPass,
		Message: fmt.Sprintf("%s (project %q, Python %s)", filepath.Base(path), cfg.ProjectName, cfg.PythonVersion),
	}, cfg
}

func checkInterpreter(ctx context.Context, version string) (CheckResult, string) {
	path, err := python.Find(ctx, version)
	if err == nil {
		out, _ := python.Version(ctx, path)
		return CheckResult{
			Name:    "Python Interpreter",
			Status:  statusPass,
			Message: fmt.Sprintf("%s (%s)", path, out),
		}, path
	}

	current, curErr := python.Current()
	if curErr != nil {
		return CheckResult{
			Name:    "Python Interpreter",
			Status:  statusFail,
			Message: "no Python found on PATH",
			Fix:     "Install Python " + version,
		}, ""
	}
	out, _ := python.Version(ctx, current)
	return CheckResult{
		Name:    "Python Interpreter",
		Status:  statusWarn,
		Message: fmt.Sprintf("Python %s not found; pyrig would fall back to %s (%s)", version, current, out),
		Fix:     "Install one of: " + strings.Join(python.Candidates(version), ", "),
	}, current
}

func checkVenvModule(ctx context.Context, pythonPath string) CheckResult {
	if err := exec.CommandContext(ctx, pythonPath, "-c", "import venv").Run(); err != nil {
		return CheckResult{
			Name:    "venv Module",
			Status:  statusFail,
			Message: "the interpreter cannot import venv",
			Fix:     "Install your distribution's python3-venv package",
		}
	}
	return CheckResult{
		Name:    "venv Module",
		Status:  statusPass,
		Message: "available",
	}
}

func checkEnvironment(dir string, cfg *config.Config) CheckResult {
	env := venv.New(filepath.Join(dir, cfg.VenvDir))
	if !env.Exists() {
		return CheckResult{
			Name:    "Virtual Environment",
			Status:  statusWarn,
			Message: cfg.VenvDir + " not created yet",
			Fix:     "Run: pyrig install-only",
		}
	}
	if _, err := os.Stat(env.Python()); err != nil {
		return CheckResult{
			Name:    "Virtual Environment",
			Status:  statusFail,
			Message: cfg.VenvDir + " exists but has no interpreter",
			Fix:     "Run: pyrig install-only --clean",
		}
	}
	return CheckResult{
		Name:    "Virtual Environment",
		Status:  statusPass,
		Message: cfg.VenvDir,
	}
}

func checkDisk(dir string) CheckResult {
	free, err := freeDiskSpace(dir)
	if err != nil {
		return CheckResult{
			Name:    "Disk Space",
			Status:  statusWarn,
			Message: "could not determine free space: " + err.Error(),
		}
	}
	msg := fmt.Sprintf("%.1f GB free", float64(free)/(1<<30))
	if free < minFreeBytes {
		return CheckResult{
			Name:    "Disk Space",
			Status:  statusWarn,
			Message: msg,
			Fix:     "Free up space before creating the environment",
		}
	}
	return CheckResult{
		Name:    "Disk Space",
		Status:  statusPass,
		Message: msg,
	}
}
