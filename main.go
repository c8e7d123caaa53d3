// pyrig - Python project bootstrapper.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/jeranaias/pyrig/internal/bootstrap"
	"github.com/jeranaias/pyrig/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	args := cli.Parse()
	ctx := context.Background()

	dir, err := os.Getwd()
	if err != nil {
		cli.Errorf("Error: %v", err)
		os.Exit(1)
	}

	b, err := bootstrap.New(ctx, dir)
	if err != nil {
		cli.Errorf("Error: %v", err)
		os.Exit(1)
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Starting setup for project: %s", b.Config.ProjectName)))

	if err := b.Run(ctx, args); err != nil {
		if errors.Is(err, bootstrap.ErrUnknownMode) {
			cli.PrintUsage()
			os.Exit(1)
		}
		cli.Errorf("Error: %v", err)

		// A failed child process sets the exit status; everything else is 1.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}
