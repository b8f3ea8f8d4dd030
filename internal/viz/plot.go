package viz

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/beadsim/internal/trace"
)

func toFloats(values []int) []float64 {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return data
}

// PlotValues draws values by index. It returns "" for empty input.
func PlotValues(values []int, caption string) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(toFloats(values),
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

// Inversions counts pairs i < j with values[i] > values[j].
func Inversions(values []int) int {
	n := 0
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if values[i] > values[j] {
				n++
			}
		}
	}
	return n
}

// PlotInversions charts how far each frame is from sorted order.
func PlotInversions(frames []trace.Frame) string {
	if len(frames) == 0 {
		return ""
	}
	data := make([]float64, len(frames))
	for i, f := range frames {
		data[i] = float64(Inversions(f.Values))
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption("inversions per frame"),
	)
}
