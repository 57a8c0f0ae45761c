package formatter

import (
	"github.com/alexanderramin/workclock/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
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

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// dayTypeLook is how each non-working classification shows up in tables and
// in the month grid.
type dayTypeLook struct {
	style  lipgloss.Style
	marker string
}

var dayTypeLooks = map[domain.DayType]dayTypeLook{
	domain.DayHoliday:        {lipgloss.NewStyle().Foreground(ColorPurple), "H"},
	domain.DayHolidayEvening: {lipgloss.NewStyle().Foreground(ColorBlue), "E"},
	domain.DayOff:            {StyleDim, "O"},
	domain.DaySemiOff:        {StyleYellow, "S"},
}

// DisableColor strips every style of its colors, for pipes and dumb terminals.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// DayTypeStyle returns the style used for a day classification.
func DayTypeStyle(t domain.DayType) lipgloss.Style {
	if look, ok := dayTypeLooks[t]; ok {
		return look.style
	}
	return StyleFg
}

// DayTypeMarker is the one-letter calendar marker of a classification, or
// "" for a normal day.
func DayTypeMarker(t domain.DayType) string {
	return dayTypeLooks[t].marker
}

// DayTypeBadge renders a colored label such as "● Holiday".
func DayTypeBadge(t domain.DayType) string {
	return DayTypeStyle(t).Render("● " + t.Label())
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
