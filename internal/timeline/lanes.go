package timeline

import "math"

// Span is an interval's screen extent. X1 and X2 may arrive in either
// order; an inverted interval yields X2 < X1.
type Span struct {
	ID     int
	X1, X2 float64
}

func (s Span) bounds() (float64, float64) {
	return math.Min(s.X1, s.X2), math.Max(s.X1, s.X2)
}

// AssignLanes places each span, in input order, in the lowest lane that
// holds no overlapping span. Closed intervals [a,b] and [c,d] overlap
// unless b < c or a > d. This is first fit by order, not a minimum
// coloring.
func AssignLanes(spans []Span) map[int]int {
	out := make(map[int]int, len(spans))
	var lanes [][][2]float64
	for _, s := range spans {
		a, b := s.bounds()
		lane := 0
		for ; lane < len(lanes); lane++ {
			if !overlapsAny(lanes[lane], a, b) {
				break
			}
		}
		if lane == len(lanes) {
			lanes = append(lanes, nil)
		}
		lanes[lane] = append(lanes[lane], [2]float64{a, b})
		out[s.ID] = lane
	}
	return out
}

func overlapsAny(placed [][2]float64, a, b float64) bool {
	for _, p := range placed {
		if !(b < p[0] || a > p[1]) {
			return true
		}
	}
	return false
}

// AssignLanesByKind runs AssignLanes separately per kind so bio lanes
// (above the axis) and soc lanes (below) are numbered independently.
func AssignLanesByKind(spans []Span, kindOf func(id int) Kind) map[int]int {
	var bio, soc []Span
	for _, s := range spans {
		if kindOf(s.ID) == Soc {
			soc = append(soc, s)
		} else {
			bio = append(bio, s)
		}
	}
	out := AssignLanes(bio)
	for id, lane := range AssignLanes(soc) {
		out[id] = lane
	}
	return out
}
