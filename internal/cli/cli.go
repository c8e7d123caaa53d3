// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for pyrig.
//
// The surface is deliberately small: three mode tokens, one flag, and
// everything else passed through verbatim to the entry script.
package cli

import (
	"fmt"
	"os"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Mode is the operational path selected on the command line.
type Mode int

const (
	// ModeFull provisions the environment, installs dependencies, and runs
	// the entry script. Default when no mode token is present.
	ModeFull Mode = iota
	// ModeInstallOnly provisions the environment and installs dependencies
	// without running the entry script.
	ModeInstallOnly
	// ModeRunOnly runs the entry script in an environment that must already
	// exist.
	ModeRunOnly
)

// String returns the CLI token for the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeInstallOnly:
		return "install-only"
	case ModeRunOnly:
		return "run-only"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Mode is the selected operational mode (last token wins on repeats).
	Mode Mode
	// Clean requests removal of the existing environment before dispatch.
	Clean bool
	// Passthrough contains every argument that is neither a mode token nor
	// --clean, in original order, for forwarding to the entry script.
	Passthrough []string
}

// Parse parses os.Args into Args. Mode tokens and --clean are recognized
// anywhere on the command line; repeated mode tokens follow last-one-wins.
func Parse() Args {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an explicit argument slice. Split out from Parse for
// testability.
func ParseArgs(argv []string) Args {
	args := Args{Mode: ModeFull}

	for _, arg := range argv {
		switch arg {
		case "install-only":
			args.Mode = ModeInstallOnly
		case "run-only":
			args.Mode = ModeRunOnly
		case "full":
			args.Mode = ModeFull
		case "--clean":
			args.Clean = true
		default:
			args.Passthrough = append(args.Passthrough, arg)
		}
	}

	return args
}

const usageText = `pyrig - Python project bootstrapper

Pyrig provisions a virtual environment for the project in the current
directory, installs its requirements, and runs its entry script, driven
by setup-config.json.

Usage:
  pyrig [install-only|run-only|full] [--clean] [script args...]

Modes:
  full           Create the environment if needed, install requirements,
                 and run the entry script (default)
  install-only   Create the environment if needed and install requirements
  run-only       Run the entry script; the environment must already exist

Flags:
  --clean        Remove the existing environment before anything else

Any other argument is forwarded verbatim to the entry script.

Configuration (setup-config.json, created with defaults on first run):
  project_name        Display name used in diagnostics
  main_file           Entry script (default main.py)
  requirements_file   Pip requirements file (default requirements.txt)
  venv_dir            Environment directory (default venv)
  python_version      Desired interpreter version (default 3.12)

Environment overrides: PYRIG_PROJECT_NAME, PYRIG_MAIN_FILE,
PYRIG_REQUIREMENTS_FILE, PYRIG_VENV_DIR, PYRIG_PYTHON_VERSION.
`

// PrintUsage writes the usage text to stdout.
func PrintUsage() {
	fmt.Print(usageText)
}
