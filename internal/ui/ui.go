package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted
type OutputMode int

const (
	// OutputModeInteractive enables colors and highlighting
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors (for piped output)
	OutputModePlain
	// OutputModeJSON outputs raw JSON only
	OutputModeJSON
)

// Color settings accepted by New
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UI provides a unified interface for terminal output with TTY detection
type UI struct {
	Mode      OutputMode
	Writer    io.Writer
	ErrWriter io.Writer
	Styles    *Styles
}

// New creates a new UI instance. color is one of ColorAuto, ColorAlways or
// ColorNever; anything else behaves like ColorAuto.
func New(w, errW io.Writer, format, color string) *UI {
	mode := detectMode(w, format, color)
	return &UI{
		Mode:      mode,
		Writer:    w,
		ErrWriter: errW,
		Styles:    NewStyles(mode == OutputModeInteractive),
	}
}

// detectMode determines the output mode based on TTY, format and color flags
func detectMode(w io.Writer, format, color string) OutputMode {
	if format == "json" {
		return OutputModeJSON
	}

	switch color {
	case ColorAlways:
		return OutputModeInteractive
	case ColorNever:
		return OutputModePlain
	}

	// Check if stdout is a terminal
	if f, ok := w.(*os.File); ok {
		if term.IsTerminal(int(f.Fd())) {
			return OutputModeInteractive
		}
	}

	return OutputModePlain
}

// IsInteractive returns true if the output is interactive (TTY)
func (ui *UI) IsInteractive() bool {
	return ui.Mode == OutputModeInteractive
}

// IsJSON returns true if JSON output mode is enabled
func (ui *UI) IsJSON() bool {
	return ui.Mode == OutputModeJSON
}
