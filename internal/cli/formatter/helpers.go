package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/workclock/internal/accounting"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner) + "\n"
	}

	return boxStyle.Render(content) + "\n"
}

// HumanDateFrom renders a date as "Today", "Yesterday", "Tomorrow" or
// "Mon, Oct 12 2026" relative to now.
func HumanDateFrom(t, now time.Time) string {
	ty, tm, td := t.Date()
	day := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Date()
	ref := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	switch int(math.Round(day.Sub(ref).Hours() / 24)) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	default:
		return t.Format("Mon, Jan 2 2006")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes renders a break length such as "30m" or "1h 15m".
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// Hours renders worked hours, red when negative.
func Hours(h float64) string {
	if h < 0 {
		return StyleRed.Render("-" + accounting.FormatHours(-h))
	}
	return accounting.FormatHours(h)
}

// Balance renders the overtime or missing side of a calculation: green
// "+2h 30m" for overtime, red "-1h" for missing hours, dim "±0h" when even.
func Balance(overtime, missing float64) string {
	switch {
	case overtime > 0:
		return StyleGreen.Render("+" + accounting.FormatHours(overtime))
	case missing > 0:
		return StyleRed.Render("-" + accounting.FormatHours(missing))
	default:
		return StyleDim.Render("±0h")
	}
}
