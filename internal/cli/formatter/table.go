package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderTable renders an aligned table with a header separator line.
// Columns are padded to the widest visible cell, so styled cells line up.
// Columns listed in rightAlign are padded on the left.
func RenderTable(headers []string, rows [][]string, rightAlign ...int) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	right := make(map[int]bool, len(rightAlign))
	for _, i := range rightAlign {
		right[i] = true
	}

	widths := make([]int, cols)
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < cols && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if right[i] {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(style(cell))
			} else {
				b.WriteString(style(cell))
				if i < cols-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}

	return b.String()
}

// RenderPairs renders label/value lines with the labels padded to one width.
func RenderPairs(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(Dim(p[0] + ":"))
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p[0])+1))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}
