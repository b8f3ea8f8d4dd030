package trace

import (
	"fmt"
	"io"
)

// WriteText writes one line per frame: step, phase, values and the four
// highlight slots.
func (t *Trace) WriteText(w io.Writer) error {
	for _, f := range t.Frames {
		if _, err := fmt.Fprintf(w, "%d %s %v %d %d %d %d\n", f.Step, f.Phase, f.Values, f.A, f.B, f.C, f.D); err != nil {
			return err
		}
	}
	return nil
}
