package cli

import (
	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// intakeHuhTheme styles the clinician forms: blue for the field being
// edited, green for chosen values, everything else kept quiet so the form
// reads like a chart, not a terminal.
func intakeHuhTheme() *huh.Theme {
	accent := lipgloss.NewStyle().Foreground(formatter.ColorBlue)
	quiet := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t := huh.ThemeBase()

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = quiet.Italic(true)
	t.Focused.SelectSelector = accent.SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedPrefix = quiet.SetString("[ ] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(formatter.ColorFg).Background(formatter.ColorBlue).Padding(0, 2)
	t.Focused.BlurredButton = quiet.Padding(0, 2)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = quiet

	// Fields not being edited collapse to the dim color wholesale.
	t.Blurred = t.Focused
	t.Blurred.Title = quiet
	t.Blurred.SelectSelector = quiet.SetString("  ")
	t.Blurred.SelectedOption = quiet
	t.Blurred.UnselectedOption = quiet
	t.Blurred.TextInput.Prompt = quiet
	t.Blurred.TextInput.Text = quiet

	return t
}
