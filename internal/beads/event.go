package beads

// None marks a highlight slot that does not apply to an event.
const None = -1

// Event is one progress snapshot. The layout is fixed so that the
// visualiser can treat every sorting routine alike.
type Event struct {
	Values []int
	A      int
	B      int
	C      int
	D      int
}

type Phase int

const (
	PhaseUnknown Phase = iota
	PhasePlace
	PhaseGravity
	PhaseCollect
)

func (p Phase) String() string {
	switch p {
	case PhasePlace:
		return "place"
	case PhaseGravity:
		return "gravity"
	case PhaseCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// ParsePhase is the inverse of Phase.String.
func ParsePhase(s string) Phase {
	switch s {
	case "place":
		return PhasePlace
	case "gravity":
		return PhaseGravity
	case "collect":
		return PhaseCollect
	default:
		return PhaseUnknown
	}
}

// Column returns the rod highlighted by the event, or None.
func (e Event) Column() int { return e.B }

// Row returns the bead height highlighted by the event, or None.
func (e Event) Row() int { return e.C }

// Phase infers which stage of the sort produced e from its highlight slots.
func (e Event) Phase() Phase {
	if e.A != None || e.D != None {
		return PhaseUnknown
	}
	switch {
	case e.B != None && e.C != None:
		return PhasePlace
	case e.B == None && e.C != None:
		return PhaseGravity
	case e.B != None && e.C == None:
		return PhaseCollect
	default:
		return PhaseUnknown
	}
}

func placeEvent(values []int, col, row int) Event {
	return Event{Values: clone(values), A: None, B: col, C: row, D: None}
}

func gravityEvent(values []int, row int) Event {
	return Event{Values: values, A: None, B: None, C: row, D: None}
}

func collectEvent(values []int, col int) Event {
	return Event{Values: clone(values), A: None, B: col, C: None, D: None}
}

func clone(values []int) []int {
	c := make([]int, len(values))
	copy(c, values)
	return c
}
