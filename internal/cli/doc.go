// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and terminal presentation for
// pyrig: the mode-token parser, the shared lipgloss style table, and
// TTY/color detection.
package cli
