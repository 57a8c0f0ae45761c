package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders worked against expected hours as a bar like
// [████░░░░]  45%. The bar is green once the target is met, yellow from two
// thirds, red below. With nothing expected the bar is full.
func RenderProgress(worked, expected float64, width int) string {
	pct := 1.0
	if expected > 0 {
		pct = worked / expected
	}
	shown := pct
	if shown < 0 {
		shown = 0
	}
	if shown > 1 {
		shown = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(shown * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.66:
		style = StyleRed
	case pct < 1:
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}
