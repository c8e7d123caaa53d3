// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package runner launches the project's entry script inside the virtual
// environment, forwarding any CLI arguments pyrig did not recognize.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/jeranaias/pyrig/internal/util"
	"github.com/jeranaias/pyrig/internal/venv"
)

// Run executes mainFile with the environment's interpreter, passing args
// through verbatim. A missing entry script is synthesized as a trivial
// placeholder first so a fresh project still produces visible output. The
// child inherits stdio; a failure is fatal and carries the child's exit
// code.
func Run(ctx context.Context, env *venv.Env, mainFile string, args []string) error {
	if _, err := os.Stat(mainFile); os.IsNotExist(err) {
		fmt.Println("Main script not found. Creating a default one...")
		placeholder := fmt.Sprintf("print(\"Default %s is running!\")\n", filepath.Base(mainFile))
		if err := util.AtomicWriteFile(mainFile, []byte(placeholder), 0644); err != nil {
			return fmt.Errorf("failed to create default main script: %w", err)
		}
	}

	fmt.Printf("Running %s...\n", mainFile)

	cmd := exec.CommandContext(ctx, env.Python(), append([]string{mainFile}, args...)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("script %s failed: %w", mainFile, err)
	}
	return nil
}
