package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how announce renders output for a human.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether output written to out should be styled.
//
// Returns ModePlain if:
//   - ANNOUNCE_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - out is not a terminal
//
// Returns ModeStyled otherwise.
func DetectMode(out *os.File) Mode {
	if os.Getenv("ANNOUNCE_NON_INTERACTIVE") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if out == nil || !term.IsTerminal(int(out.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if out should be styled.
func IsStyled(out *os.File) bool {
	return DetectMode(out) == ModeStyled
}
