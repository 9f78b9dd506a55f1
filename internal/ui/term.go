package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Per-expression diagnostics and entry-open failures
	colorError = color.New(color.FgRed)
)

// stdinIsTerminal reports whether stdin is attached to a terminal.
func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatError formats a diagnostic line.
func formatError(s string) string {
	return colorError.Sprint(s)
}
