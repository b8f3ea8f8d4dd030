package trace

import (
	"bytes"
	"context"
	"iter"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/beadsim/internal/beads"
)

func TestRecord_Golden(t *testing.T) {
	tr, err := Record(context.Background(), "bead", beads.Sort, []int{3, 1, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tr.WriteText(&buf))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "bead_3_1_2", buf.Bytes())
}

func TestRecord_Stats(t *testing.T) {
	input := []int{3, 1, 2}
	tr, err := Record(context.Background(), "bead", beads.Sort, input)
	require.NoError(t, err)

	assert.Equal(t, Stats{Place: 6, Gravity: 3, Collect: 3, Total: 12, MaxVal: 3}, tr.Stats)
	assert.Equal(t, []int{3, 1, 2}, tr.Input)
	assert.Equal(t, []int{1, 2, 3}, tr.Output)
	assert.Equal(t, []int{3, 1, 2}, input, "caller's slice must not be touched")
	assert.NoError(t, tr.Verify())
}

func TestRecord_Empty(t *testing.T) {
	tr, err := Record(context.Background(), "bead", beads.Sort, nil)
	require.NoError(t, err)

	assert.Empty(t, tr.Frames)
	assert.Empty(t, tr.Output)
	assert.Equal(t, 0, tr.Stats.Total)
	assert.NoError(t, tr.Verify())
}

func TestRecord_InvalidInput(t *testing.T) {
	tr, err := Record(context.Background(), "bead", beads.Sort, []int{3, -1, 2})
	require.Error(t, err)
	assert.Nil(t, tr)
	assert.ErrorIs(t, err, beads.ErrInvalidInput)
}

func TestRecord_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Record(ctx, "bead", beads.Sort, []int{2, 1})
	assert.ErrorIs(t, err, ErrCanceled)
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name string
		tr   Trace
		err  error
	}{
		{
			name: "unsorted",
			tr:   Trace{Input: []int{2, 1}, Output: []int{2, 1}},
			err:  ErrNotSorted,
		},
		{
			name: "lost value",
			tr:   Trace{Input: []int{2, 1}, Output: []int{1, 1}},
			err:  ErrNotPermutation,
		},
		{
			name: "short trace",
			tr:   Trace{Input: []int{2, 1}, Output: []int{1, 2}, Stats: Stats{Total: 3}},
			err:  ErrEventCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.tr.Verify(), tt.err)
		})
	}
}

func TestFrameEvent(t *testing.T) {
	tr, err := Record(context.Background(), "bead", beads.Sort, []int{1, 0})
	require.NoError(t, err)

	for _, f := range tr.Frames {
		assert.Equal(t, f.Phase, f.Event().Phase().String())
	}
}

func TestRecord_UsesAlgorithm(t *testing.T) {
	var gotArgs int
	algo := func(values []int, args ...any) (iter.Seq[beads.Event], error) {
		gotArgs = len(args)
		return func(yield func(beads.Event) bool) {
			values[0], values[1] = values[1], values[0]
			yield(beads.Event{Values: []int{values[0], values[1]}, A: beads.None, B: 0, C: beads.None, D: beads.None})
		}, nil
	}

	tr, err := Record(context.Background(), "swap", algo, []int{2, 1})
	require.NoError(t, err)

	assert.Equal(t, 0, gotArgs)
	assert.Equal(t, "swap", tr.Algorithm)
	assert.Equal(t, []int{1, 2}, tr.Output)
	assert.Equal(t, 1, tr.Stats.Collect)
}
