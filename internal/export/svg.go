// Package export renders bead rack frames to static formats.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/beadsim/internal/trace"
)

// RackSVG draws values as a bead rack: one vertical rod per value with its
// beads resting at the bottom. scale is the pixel spacing between beads.
func RackSVG(values []int, scale float64) string {
	maxVal := 0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}

	width := float64(len(values)+1) * scale
	height := float64(maxVal+1) * scale
	bottom := height - scale/2

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	sb.WriteString(`<g stroke="#444466" stroke-width="1">
`)
	for col := range values {
		x := float64(col+1) * scale
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x, scale/2, x, bottom))
	}
	sb.WriteString("</g>\n")

	sb.WriteString(`<g fill="#00ffff">
`)
	radius := scale * 0.4
	for col, v := range values {
		x := float64(col+1) * scale
		for r := 0; r < v; r++ {
			y := bottom - float64(r)*scale - scale/2
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, x, y, radius))
		}
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}

// FrameSVG renders frame i of frames, counting from zero.
func FrameSVG(frames []trace.Frame, i int, scale float64) (string, error) {
	if i < 0 || i >= len(frames) {
		return "", fmt.Errorf("frame %d out of range (0-%d)", i, len(frames)-1)
	}
	return RackSVG(frames[i].Values, scale), nil
}
