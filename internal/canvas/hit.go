package canvas

import (
	"memento/internal/timeline"
)

// HitShape is a hit area in screen pixels.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangle.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circle.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitsAt lists the events whose regions contain (x, y), bottom to top.
func (s Scene) HitsAt(x, y float64) []int {
	var out []int
	for _, r := range s.regions {
		if r.shape.Contains(x, y) {
			out = append(out, r.index)
		}
	}
	return out
}

// HitTest returns the topmost (last drawn) event under (x, y).
func (s Scene) HitTest(x, y float64) (int, bool) {
	for i := len(s.regions) - 1; i >= 0; i-- {
		if s.regions[i].shape.Contains(x, y) {
			return s.regions[i].index, true
		}
	}
	return -1, false
}

// Hover is the active hover or tap payload.
type Hover struct {
	ScreenX, ScreenY float64
	Index            int
	Event            timeline.Event
}

// Tooltip returns the title and detail line shown for ev.
func Tooltip(ev timeline.Event) (title, detail string) {
	if ev.IsInterval() {
		detail = ev.When()
		if ev.Note != "" {
			detail += " • " + ev.Note
		}
		return ev.Label, detail
	}
	note := ev.Note
	if note == "" {
		note = ev.Kind.Title()
	}
	return ev.Label, ev.When() + " • " + note
}
