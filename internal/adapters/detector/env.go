// Package detector picks between the interactive and the linear view.
package detector

import (
	"os"

	"go.trai.ch/slicer/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// OutputMode represents the rendering mode for a slice session.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive tree view.
	ModeTUI
	// ModeLinear forces the printed tree.
	ModeLinear
)

// String returns the flag spelling of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// Env is the part of the process environment that decides the mode.
type Env struct {
	IsTerminal func() bool
	Getenv     func(string) string
}

// ProcessEnv reads the real stdout and environment.
func ProcessEnv() Env {
	return Env{
		IsTerminal: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }, //nolint:gosec // fd fits in int
		Getenv:     os.Getenv,
	}
}

// Detect returns the mode suited to env: linear when stdout is not a
// terminal or a CI variable is set, interactive otherwise.
func Detect(env Env) OutputMode {
	ci := env.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !env.IsTerminal() || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ParseMode reads an --output-mode value. An empty value means auto.
func ParseMode(flag string) (OutputMode, error) {
	switch flag {
	case "auto", "":
		return ModeAuto, nil
	case "tui":
		return ModeTUI, nil
	case "linear", "ci":
		return ModeLinear, nil
	default:
		return ModeAuto, zerr.With(domain.ErrInvalidOutputMode, "mode", flag)
	}
}

// Resolve applies the requested mode to the environment. ModeAuto is
// replaced by the detected mode.
func Resolve(requested OutputMode, env Env) OutputMode {
	if requested != ModeAuto {
		return requested
	}
	return Detect(env)
}
