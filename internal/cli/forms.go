package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/workclock/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// workclockHuhTheme returns a huh theme using the formatter palette.
func workclockHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateHours accepts empty or a whole number of hours in 0..24.
func validateHours(s string) error {
	if err := validateNonNegativeInt(s); err != nil {
		return err
	}
	if v, _ := strconv.Atoi(s); v > 24 {
		return fmt.Errorf("a day has at most 24 hours")
	}
	return nil
}
