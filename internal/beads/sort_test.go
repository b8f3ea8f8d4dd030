package beads_test

import (
	"iter"
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/beadsim/internal/beads"
)

func drain(seq iter.Seq[beads.Event]) []beads.Event {
	var events []beads.Event
	for ev := range seq {
		events = append(events, ev)
	}
	return events
}

func mustSort(values []int) []beads.Event {
	seq, err := beads.Sort(values)
	Expect(err).NotTo(HaveOccurred())
	return drain(seq)
}

var _ = Describe("Sort", func() {
	Context("with a mixed input", func() {
		var (
			values []int
			events []beads.Event
		)

		BeforeEach(func() {
			values = []int{3, 1, 2}
			events = mustSort(values)
		})

		It("sorts the slice in place", func() {
			Expect(values).To(Equal([]int{1, 2, 3}))
		})

		It("emits one event per bead, row and column", func() {
			Expect(events).To(HaveLen(6 + 3 + 3))
			Expect(events).To(HaveLen(beads.EventCount([]int{3, 1, 2})))
		})

		It("places beads column by column, bottom up", func() {
			type cell struct{ col, row int }
			var placed []cell
			for _, ev := range events[:6] {
				Expect(ev.Phase()).To(Equal(beads.PhasePlace))
				Expect(ev.Values).To(Equal([]int{3, 1, 2}))
				Expect(ev.A).To(Equal(beads.None))
				Expect(ev.D).To(Equal(beads.None))
				placed = append(placed, cell{ev.B, ev.C})
			}
			Expect(placed).To(Equal([]cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {2, 0}, {2, 1}}))
		})

		It("collapses rows in ascending order", func() {
			gravity := events[6:9]
			expected := [][]int{{3, 1, 2}, {2, 2, 2}, {1, 2, 3}}
			for i, ev := range gravity {
				Expect(ev.Phase()).To(Equal(beads.PhaseGravity))
				Expect(ev.Row()).To(Equal(i))
				Expect(ev.Column()).To(Equal(beads.None))
				Expect(ev.Values).To(Equal(expected[i]))
			}
		})

		It("writes final values back column by column", func() {
			collect := events[9:]
			expected := [][]int{{1, 1, 2}, {1, 2, 2}, {1, 2, 3}}
			for i, ev := range collect {
				Expect(ev.Phase()).To(Equal(beads.PhaseCollect))
				Expect(ev.Column()).To(Equal(i))
				Expect(ev.Row()).To(Equal(beads.None))
				Expect(ev.Values).To(Equal(expected[i]))
			}
		})

		It("hands out independent snapshots", func() {
			events[0].Values[0] = 99
			Expect(events[1].Values[0]).To(Equal(3))
			Expect(values[0]).To(Equal(1))
		})
	})

	It("yields nothing for empty input", func() {
		values := []int{}
		Expect(mustSort(values)).To(BeEmpty())
		Expect(values).To(BeEmpty())
	})

	It("leaves sorted input sorted", func() {
		values := []int{1, 2, 3}
		events := mustSort(values)
		Expect(values).To(Equal([]int{1, 2, 3}))
		Expect(events).To(HaveLen(6 + 3 + 3))
	})

	It("handles a single element", func() {
		values := []int{5}
		events := mustSort(values)
		Expect(values).To(Equal([]int{5}))
		Expect(events).To(HaveLen(5 + 5 + 1))
	})

	It("keeps all-equal input unchanged through gravity", func() {
		values := []int{4, 4, 4}
		events := mustSort(values)
		Expect(values).To(Equal([]int{4, 4, 4}))
		for _, ev := range events {
			if ev.Phase() == beads.PhaseGravity {
				Expect(ev.Values).To(Equal([]int{4, 4, 4}))
			}
		}
	})

	It("treats all-zero input as an empty rack", func() {
		values := []int{0, 0}
		events := mustSort(values)
		Expect(values).To(Equal([]int{0, 0}))
		Expect(events).To(HaveLen(2))
		for _, ev := range events {
			Expect(ev.Phase()).To(Equal(beads.PhaseCollect))
		}
	})

	Context("with invalid input", func() {
		It("rejects negatives before touching the slice", func() {
			values := []int{3, -1, 2}
			seq, err := beads.Sort(values)
			Expect(seq).To(BeNil())
			Expect(err).To(MatchError(beads.ErrInvalidInput))

			var invalid *beads.InvalidInputError
			Expect(err).To(BeAssignableToTypeOf(invalid))
			invalid = err.(*beads.InvalidInputError)
			Expect(invalid.Index).To(Equal(1))
			Expect(invalid.Value).To(Equal(-1))
			Expect(values).To(Equal([]int{3, -1, 2}))
		})
	})

	It("ignores auxiliary arguments", func() {
		values := []int{2, 1}
		seq, err := beads.Sort(values, "ignored", 42, nil)
		Expect(err).NotTo(HaveOccurred())
		drain(seq)
		Expect(values).To(Equal([]int{1, 2}))
	})

	It("cannot be restarted", func() {
		values := []int{2, 1}
		seq, err := beads.Sort(values)
		Expect(err).NotTo(HaveOccurred())
		Expect(drain(seq)).NotTo(BeEmpty())
		Expect(drain(seq)).To(BeEmpty())
	})

	It("stops at the consumer's request", func() {
		values := []int{3, 1, 2}
		seq, err := beads.Sort(values)
		Expect(err).NotTo(HaveOccurred())

		seen := 0
		for range seq {
			seen++
			if seen == 4 {
				break
			}
		}
		Expect(seen).To(Equal(4))
		Expect(values).To(Equal([]int{3, 1, 2}))
	})

	It("sorts a larger input into a permutation", func() {
		values := []int{9, 0, 4, 4, 7, 1, 0, 12, 3, 3, 8}
		want := slices.Clone(values)
		slices.Sort(want)

		events := mustSort(values)
		Expect(values).To(Equal(want))
		Expect(events).To(HaveLen(beads.EventCount(want)))
	})
})
