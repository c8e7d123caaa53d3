// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for pyrig's terminal output.
//
// Color handling:
// - Colors are automatically disabled for non-TTY output (piped, redirected)
// - Respects NO_COLOR environment variable (https://no-color.org/)
// - Supports FORCE_COLOR environment variable to override detection
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

var (
	// TitleStyle is used for the startup banner line
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// PhaseStyle is used for phase-transition messages
	PhaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")) // Blue

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for fatal diagnostics
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for recoverable problems
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Yellow/Orange

	// DimStyle is used for secondary information and hints
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")) // Dim gray
)

// Phasef prints a styled phase-transition message to stdout.
func Phasef(format string, a ...interface{}) {
	fmt.Println(PhaseStyle.Render(fmt.Sprintf(format, a...)))
}

// Warnf prints a styled warning to stdout.
func Warnf(format string, a ...interface{}) {
	fmt.Println(WarningStyle.Render("Warning: " + fmt.Sprintf(format, a...)))
}

// Errorf prints a styled error to stderr.
func Errorf(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+fmt.Sprintf(format, a...)))
}
