// Package ui holds small presentation helpers shared by the CLI commands.
package ui

import (
	"os"

	"golang.org/x/term"
)

// ShouldUseColor reports whether the report may use ANSI escapes on stdout.
// NO_COLOR (https://no-color.org) wins over everything; CLICOLOR_FORCE=1
// allows color even when stdout is piped; otherwise color requires a TTY.
func ShouldUseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CLICOLOR_FORCE") == "1" {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
