package beads

import "iter"

// Algorithm is the call signature shared by sorting routines that feed the
// visualiser. Extra arguments are accepted and ignored.
type Algorithm func(values []int, args ...any) (iter.Seq[Event], error)

var _ Algorithm = Sort

// Validate reports the first negative element of values.
func Validate(values []int) error {
	for i, v := range values {
		if v < 0 {
			return &InvalidInputError{Index: i, Value: v}
		}
	}
	return nil
}

// Sort validates values and returns a lazy sequence of progress events.
// Draining the sequence sorts values in place. Stopping early leaves values
// in an undefined intermediate state. The sequence can only be ranged once.
func Sort(values []int, _ ...any) (iter.Seq[Event], error) {
	if err := Validate(values); err != nil {
		return nil, err
	}

	consumed := false
	return func(yield func(Event) bool) {
		if consumed || len(values) == 0 {
			return
		}
		consumed = true
		run(values, yield)
	}, nil
}

func run(values []int, yield func(Event) bool) {
	n := len(values)
	maxVal := maxOf(values)
	grid := NewGrid(maxVal, n)

	for col := 0; col < n; col++ {
		for row := 0; row < values[col]; row++ {
			grid.Set(row, col)
			if !yield(placeEvent(values, col, row)) {
				return
			}
		}
	}

	for row := 0; row < maxVal; row++ {
		grid.Collapse(row)
		if !yield(gravityEvent(grid.ColumnSums(), row)) {
			return
		}
	}

	for col := 0; col < n; col++ {
		values[col] = grid.ColumnSum(col)
		if !yield(collectEvent(values, col)) {
			return
		}
	}
}

// EventCount is the number of events a full run over values emits.
func EventCount(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum + maxOf(values) + len(values)
}

func maxOf(values []int) int {
	m := 0
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}
