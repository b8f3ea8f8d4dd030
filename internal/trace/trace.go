// Package trace records the event stream of a sorting run into frames that
// can be replayed, stored and verified.
package trace

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/beadsim/internal/beads"
)

var (
	// ErrCanceled indicates recording was interrupted before the run finished.
	ErrCanceled = errors.New("trace: recording canceled by context")

	// ErrNotSorted indicates the recorded output is out of order.
	ErrNotSorted = errors.New("trace: output is not sorted")

	// ErrNotPermutation indicates the output lost or gained values.
	ErrNotPermutation = errors.New("trace: output is not a permutation of the input")

	// ErrEventCount indicates the trace length disagrees with the input.
	ErrEventCount = errors.New("trace: unexpected number of events")
)

type Frame struct {
	Step   int    `json:"step"`
	Phase  string `json:"phase"`
	Values []int  `json:"values"`
	A      int    `json:"a"`
	B      int    `json:"b"`
	C      int    `json:"c"`
	D      int    `json:"d"`
}

// Event converts the frame back to the engine's event shape.
func (f Frame) Event() beads.Event {
	return beads.Event{Values: f.Values, A: f.A, B: f.B, C: f.C, D: f.D}
}

type Stats struct {
	Place   int `json:"place"`
	Gravity int `json:"gravity"`
	Collect int `json:"collect"`
	Total   int `json:"total"`
	MaxVal  int `json:"max_value"`
}

type Trace struct {
	Algorithm string  `json:"algorithm"`
	Input     []int   `json:"input"`
	Output    []int   `json:"output"`
	Frames    []Frame `json:"frames"`
	Stats     Stats   `json:"stats"`
}

// Record runs algo over a copy of input and collects every event it emits.
func Record(ctx context.Context, name string, algo beads.Algorithm, input []int) (*Trace, error) {
	values := slices.Clone(input)
	if values == nil {
		values = []int{}
	}

	seq, err := algo(values)
	if err != nil {
		return nil, err
	}

	tr := &Trace{
		Algorithm: name,
		Input:     slices.Clone(values),
		Frames:    make([]Frame, 0, beads.EventCount(values)),
	}
	for _, v := range values {
		tr.Stats.MaxVal = max(tr.Stats.MaxVal, v)
	}

	step := 0
	for ev := range seq {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("step %d: %w", step, ErrCanceled)
		}
		tr.add(step, ev)
		step++
	}

	tr.Output = values
	return tr, nil
}

func (t *Trace) add(step int, ev beads.Event) {
	phase := ev.Phase()
	switch phase {
	case beads.PhasePlace:
		t.Stats.Place++
	case beads.PhaseGravity:
		t.Stats.Gravity++
	case beads.PhaseCollect:
		t.Stats.Collect++
	}
	t.Stats.Total++

	t.Frames = append(t.Frames, Frame{
		Step:   step,
		Phase:  phase.String(),
		Values: ev.Values,
		A:      ev.A,
		B:      ev.B,
		C:      ev.C,
		D:      ev.D,
	})
}

// Verify checks that the run produced a sorted permutation of its input
// with the expected number of events.
func (t *Trace) Verify() error {
	if !slices.IsSorted(t.Output) {
		return fmt.Errorf("%w: %v", ErrNotSorted, t.Output)
	}

	want := slices.Clone(t.Input)
	slices.Sort(want)
	if !slices.Equal(want, t.Output) {
		return fmt.Errorf("%w: %v -> %v", ErrNotPermutation, t.Input, t.Output)
	}

	if expected := beads.EventCount(t.Input); t.Stats.Total != expected {
		return fmt.Errorf("%w: got %d, want %d", ErrEventCount, t.Stats.Total, expected)
	}
	return nil
}
