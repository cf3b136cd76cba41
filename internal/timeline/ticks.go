package timeline

import (
	"math"
	"time"
)

// Tick is an axis mark at a whole age.
type Tick struct {
	Age int
	At  time.Time
}

// TickStep returns the age step for a span at the given zoom. Steps shrink
// with the square root of scale so tick count grows sub-linearly.
func TickStep(spanYears, scale float64) int {
	base := 2.0
	switch {
	case spanYears > 80:
		base = 10
	case spanYears > 40:
		base = 5
	}
	step := int(math.Round(base / math.Sqrt(scale)))
	if step < 1 {
		step = 1
	}
	return step
}

// Ticks generates marks from age 0 through ceil(span) at TickStep spacing.
func Ticks(w Window, scale float64) []Tick {
	span := w.SpanYears()
	step := TickStep(span, scale)
	last := int(math.Ceil(span))
	var out []Tick
	for a := 0; a <= last; a += step {
		out = append(out, Tick{Age: a, At: ToInstant(w.Birth, float64(a))})
	}
	return out
}
