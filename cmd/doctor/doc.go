// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
pyrig-doctor checks that a project directory is ready for pyrig.

It runs read-only diagnostics against the current directory and reports
each as pass, warn, or fail:

  - Operating system and architecture
  - Setup configuration (setup-config.json or setup-config.toml)
  - Python interpreter matching the configured version
  - The interpreter's venv module
  - The project's virtual environment
  - Free disk space

Build it alongside the main binary:

	go build -o pyrig-doctor ./cmd/doctor

The command exits 0 when no check fails; warnings do not affect the exit
status.
*/
package main
