package canvas

import (
	"math"
	"time"

	"memento/internal/timeline"
)

// Input is everything a scene build depends on. Any change to it means a
// new Build; scenes are never patched in place.
type Input struct {
	Window   timeline.Window
	Events   []timeline.Event
	Viewport Viewport
	Layout   Layout
	Today    time.Time
}

// TickMark is a tick at screen X.
type TickMark struct {
	X    float64
	Age  int
	Year int
}

// TodayMark is the current-date line. It is only present when today falls
// inside the window.
type TodayMark struct {
	X  float64
	At time.Time
}

// Marker is a point event drawn as a circle.
type Marker struct {
	Index int
	X, Y  float64
	R     float64
	Kind  timeline.Kind
	Shape HitCircle
}

// Band is an interval event drawn as a rounded rectangle centred on Y.
// Dir is -1 for bands above the axis and +1 below.
type Band struct {
	Index   int
	X, Y    float64
	W, H    float64
	Lane    int
	Dir     int
	Kind    timeline.Kind
	Opacity float64
	Shape   HitRect
}

// LabelX is the band midpoint, where its label is centred.
func (b Band) LabelX() float64 { return b.X + b.W/2 }

// region is one hit target in render order.
type region struct {
	index int
	shape HitShape
}

// Scene is the screen-space geometry of one frame.
type Scene struct {
	Layout   Layout
	Viewport Viewport
	Window   timeline.Window
	Events   []timeline.Event

	AxisX1, AxisX2 float64
	Ticks          []TickMark
	Today          *TodayMark
	Markers        []Marker
	Bands          []Band
	Lanes          map[int]int

	regions []region
}

// Build runs project → transform → allocate lanes for one frame.
func Build(in Input) Scene {
	l, vp, w := in.Layout, in.Viewport, in.Window
	xFor := func(t time.Time) float64 {
		return vp.ScreenX(timeline.ProjectToAxis(t, w, l.Padding, l.Width))
	}
	sc := Scene{
		Layout:   l,
		Viewport: vp,
		Window:   w,
		Events:   in.Events,
		AxisX1:   vp.ScreenX(l.Padding),
		AxisX2:   vp.ScreenX(l.Width - l.Padding),
	}
	for _, t := range timeline.Ticks(w, vp.Scale) {
		sc.Ticks = append(sc.Ticks, TickMark{X: xFor(t.At), Age: t.Age, Year: t.At.Year()})
	}
	if !in.Today.IsZero() && w.Contains(in.Today) {
		sc.Today = &TodayMark{X: xFor(in.Today), At: in.Today}
	}

	// lanes depend on screen-space overlap, so they follow the viewport
	var spans []timeline.Span
	for i, ev := range in.Events {
		if ev.IsInterval() {
			spans = append(spans, timeline.Span{ID: i, X1: xFor(ev.Start), X2: xFor(ev.End)})
		}
	}
	sc.Lanes = timeline.AssignLanesByKind(spans, func(id int) timeline.Kind { return in.Events[id].Kind })

	for i, ev := range in.Events {
		imp := ev.Importance.Level() - 1
		if !ev.IsInterval() {
			m := Marker{Index: i, X: xFor(ev.At), Y: l.TrackY, R: l.MarkerRadius[imp], Kind: ev.Kind}
			m.Shape = HitCircle{CenterX: m.X, CenterY: m.Y, Radius: m.R + l.HitSlop}
			sc.Markers = append(sc.Markers, m)
			sc.regions = append(sc.regions, region{index: i, shape: m.Shape})
			continue
		}
		x1, x2 := xFor(ev.Start), xFor(ev.End)
		lane := sc.Lanes[i]
		dir := 1
		if ev.Kind == timeline.Bio {
			dir = -1
		}
		b := Band{
			Index:   i,
			X:       math.Min(x1, x2),
			W:       math.Abs(x2 - x1),
			H:       l.BandHeight[imp],
			Y:       l.TrackY + float64(dir)*(l.LaneOffset+float64(lane)*l.LaneGap),
			Lane:    lane,
			Dir:     dir,
			Kind:    ev.Kind,
			Opacity: l.BandOpacity[imp],
		}
		b.Shape = HitRect{
			X:      b.X - l.HitSlop,
			Y:      b.Y - b.H/2 - l.HitSlop,
			Width:  b.W + 2*l.HitSlop,
			Height: b.H + 2*l.HitSlop,
		}
		sc.Bands = append(sc.Bands, b)
		sc.regions = append(sc.regions, region{index: i, shape: b.Shape})
	}
	return sc
}

// XFor projects an arbitrary instant with the scene's transform.
func (s Scene) XFor(t time.Time) float64 {
	return s.Viewport.ScreenX(timeline.ProjectToAxis(t, s.Window, s.Layout.Padding, s.Layout.Width))
}

// InstantAt inverts XFor: the instant under screen X.
func (s Scene) InstantAt(screenX float64) time.Time {
	model := s.Viewport.ModelX(screenX)
	frac := (model - s.Layout.Padding) / (s.Layout.Width - 2*s.Layout.Padding)
	return timeline.ToInstant(s.Window.Birth, frac*s.Window.SpanYears())
}

// Nearest returns the event whose marker or band midpoint is closest to
// screen X, if any.
func (s Scene) Nearest(screenX float64) (int, bool) {
	best, bestD := -1, math.Inf(1)
	try := func(i int, x float64) {
		if d := math.Abs(x - screenX); d < bestD {
			best, bestD = i, d
		}
	}
	for _, m := range s.Markers {
		try(m.Index, m.X)
	}
	for _, b := range s.Bands {
		try(b.Index, b.LabelX())
	}
	return best, best >= 0
}
