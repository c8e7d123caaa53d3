// pyrig-doctor - environment diagnostics for pyrig projects.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jeranaias/pyrig/internal/cli"
)

var version = "0.1.0"

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("pyrig-doctor %s\n", version)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown option: %s\n\n", arg)
			printHelp()
			os.Exit(1)
		}
	}

	dir, err := os.Getwd()
	if err != nil {
		cli.Errorf("Error: %v", err)
		os.Exit(1)
	}

	fmt.Println(cli.TitleStyle.Render("pyrig doctor"))
	fmt.Println(cli.DimStyle.Render("Checking the Python toolchain for " + dir))
	fmt.Println()

	failed := false
	for _, r := range runChecks(context.Background(), dir) {
		fmt.Println(r.render())
		if r.Status == statusFail {
			failed = true
		}
	}

	fmt.Println()
	if failed {
		fmt.Println(cli.ErrorStyle.Render("Some checks failed. Fix the items above and re-run."))
		os.Exit(1)
	}
	fmt.Println(cli.SuccessStyle.Render("All checks passed. pyrig is ready to use here."))
}

func printHelp() {
	fmt.Print(`pyrig-doctor - check that a project directory is ready for pyrig

Usage:
  pyrig-doctor [--help] [--version]

Runs read-only diagnostics against the current directory: configuration,
Python interpreter, the venv module, the virtual environment, and disk
space. Nothing is created or modified.
`)
}
