// Package beads implements bead sort (gravity sort) over non-negative integers.
//
// Each value becomes a column of beads on a rack of rods. The engine runs in
// three phases:
//
//   - placement: beads are dropped onto the [Grid], one event per bead
//   - gravity: each row collapses so its beads pack to the right
//   - collect: column sums are written back into the caller's slice
//
// # Example
//
//	values := []int{3, 1, 2}
//	events, err := beads.Sort(values)
//	if err != nil {
//		return err
//	}
//	for ev := range events {
//		render(ev)
//	}
//	// values is now [1 2 3]
//
// # Events
//
// Every [Event] has the same five-slot shape used by the visualiser: the
// values snapshot followed by four highlight indices. Unused slots hold
// [None].
//
// # Thread Safety
//
// A sequence returned by [Sort] owns the caller's slice until it is drained.
// It must be consumed from a single goroutine and cannot be restarted.
package beads
