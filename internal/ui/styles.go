package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	// Confidence styles
	Sure    lipgloss.Style
	Unsure  lipgloss.Style
	NoMatch lipgloss.Style

	// Structural styles
	Header    lipgloss.Style
	Banner    lipgloss.Style
	Muted     lipgloss.Style
	Error     lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconTop   string
	IconError string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{}

	if enabled {
		s.Sure = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))    // Green
		s.Unsure = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))  // Yellow
		s.NoMatch = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // Gray

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")) // Cyan bold
		s.Banner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))              // Gray
		s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))              // Red
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))          // Gray

		s.IconTop = "★"   // ★
		s.IconError = "✗" // ✗
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Sure = lipgloss.NewStyle()
		s.Unsure = lipgloss.NewStyle()
		s.NoMatch = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Banner = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Error = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconTop = "*"
		s.IconError = "x"
	}

	return s
}

// Confidence returns the style for a confidence score
func (s *Styles) Confidence(score float64) lipgloss.Style {
	switch {
	case score >= 0.9:
		return s.Sure
	case score > 0:
		return s.Unsure
	default:
		return s.NoMatch
	}
}
