package timeline

import "time"

// Event is a milestone resolved against a birth instant. At is set for
// points; Start and End for intervals.
type Event struct {
	Milestone
	At    time.Time
	Start time.Time
	End   time.Time
}

// Materialize resolves every definition against birth. Output order equals
// input order; renderers use it for z-order and lane tie-breaks.
func Materialize(defs []Milestone, birth time.Time) []Event {
	out := make([]Event, len(defs))
	for i, d := range defs {
		ev := Event{Milestone: d}
		switch d.Shape {
		case ShapeInterval:
			ev.Start = ToInstant(birth, d.StartAge)
			ev.End = ToInstant(birth, d.EndAge)
		default:
			ev.At = ToInstant(birth, d.Age)
		}
		out[i] = ev
	}
	return out
}

// When renders the resolved instant(s) for lists and tooltips.
func (e Event) When() string {
	if e.IsInterval() {
		return FormatDate(e.Start) + " → " + FormatDate(e.End)
	}
	return FormatDate(e.At)
}
