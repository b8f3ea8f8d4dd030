package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/beadsim/internal/beads"
)

const (
	beadGlyph  = "●"
	emptyGlyph = "·"
	barGlyph   = "█"
)

// RenderRack draws one line per bead height, highest first, so row 0 sits
// on the baseline. col and row mark the rod and height an event refers to;
// pass beads.None to leave them unmarked.
func RenderRack(values []int, col, row int) string {
	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	var b strings.Builder
	for r := maxVal - 1; r >= 0; r-- {
		marker := "  "
		if r == row {
			marker = highlightStyle().Render("▶ ")
		}
		b.WriteString(marker)
		for c, v := range values {
			glyph := emptyGlyph
			if v > r {
				glyph = beadGlyph
			}
			switch {
			case c == col || (r == row && v > r):
				b.WriteString(highlightStyle().Render(glyph))
			case v > r:
				b.WriteString(beadStyle().Render(glyph))
			default:
				b.WriteString(mutedStyle().Render(glyph))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + mutedStyle().Render(strings.Repeat("──", len(values))) + "\n")
	b.WriteString("  ")
	for c := range values {
		label := fmt.Sprintf("%-2d", c%10)
		if c == col {
			b.WriteString(highlightStyle().Render(label))
		} else {
			b.WriteString(mutedStyle().Render(label))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderBars draws values scaled to at most height lines.
func RenderBars(values []int, col, height int) string {
	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 || height <= 0 {
		return mutedStyle().Render(strings.Repeat("──", len(values))) + "\n"
	}

	scaled := make([]int, len(values))
	for i, v := range values {
		scaled[i] = (v*height + maxVal - 1) / maxVal
	}

	var b strings.Builder
	for level := height; level >= 1; level-- {
		for c, h := range scaled {
			cell := "  "
			if h >= level {
				if c == col {
					cell = highlightStyle().Render(barGlyph) + " "
				} else {
					cell = beadStyle().Render(barGlyph) + " "
				}
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle().Render(strings.Repeat("──", len(values))) + "\n")
	return b.String()
}

// Render picks the rack when it fits in height lines and scaled bars
// otherwise.
func Render(ev beads.Event, height int) string {
	maxVal := 0
	for _, v := range ev.Values {
		maxVal = max(maxVal, v)
	}
	if maxVal <= height {
		return RenderRack(ev.Values, ev.Column(), ev.Row())
	}
	return RenderBars(ev.Values, ev.Column(), height)
}
