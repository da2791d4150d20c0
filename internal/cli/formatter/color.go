package formatter

import (
	"github.com/caregrid/intake/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// MilestoneColor returns the style for a derived milestone status.
func MilestoneColor(status domain.MilestoneStatus) lipgloss.Style {
	switch status {
	case domain.MilestoneDelayed:
		return StyleRed
	case domain.MilestoneMonitor:
		return StyleYellow
	case domain.MilestoneOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// StatusLabel renders the session status with its color.
func StatusLabel(status domain.SessionStatus) string {
	switch status {
	case domain.StatusSubmitted:
		return StyleBlue.Render("SUBMITTED")
	case domain.StatusDraft:
		return StyleYellow.Render("DRAFT")
	default:
		return StyleDim.Render("NONE")
	}
}
