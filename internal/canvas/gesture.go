package canvas

import "math"

// GestureKind names the active interaction session.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureDrag
	GestureTouchPan
	GesturePinch
)

func (k GestureKind) String() string {
	switch k {
	case GestureDrag:
		return "drag"
	case GestureTouchPan:
		return "touch pan"
	case GesturePinch:
		return "pinch"
	}
	return "none"
}

// Point is a screen position in pixels.
type Point struct{ X, Y float64 }

func distance(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

func midpoint(a, b Point) Point { return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2} }

// session is one pan or pinch from start to end. It owns the viewport
// while active; teardown hooks run once, in reverse order, on every exit
// path.
type session struct {
	kind GestureKind
	vp   *Viewport

	// pan: offsets are taken from the start so a long drag never
	// accumulates rounding error
	startX         float64
	startTranslate float64
	lastX          float64

	// pinch: distance at the previous sample
	prevDist float64

	teardown []func()
	ended    bool
}

func newPan(kind GestureKind, vp *Viewport, x float64) *session {
	return &session{kind: kind, vp: vp, startX: x, startTranslate: vp.Translate, lastX: x}
}

func newPinch(vp *Viewport, a, b Point) *session {
	return &session{kind: GesturePinch, vp: vp, prevDist: distance(a, b)}
}

func (g *session) onEnd(fn func()) { g.teardown = append(g.teardown, fn) }

// panTo moves the view so the start point follows x.
func (g *session) panTo(x float64) {
	g.vp.Translate = g.startTranslate + (x - g.startX)
	g.lastX = x
}

// rebase restarts the pan from the last sample. Called after the viewport
// moved under an active pan, so the next sample keeps that change.
func (g *session) rebase() {
	g.startX = g.lastX
	g.startTranslate = g.vp.Translate
}

// pinchTo zooms by the distance ratio since the previous sample, anchored
// at the finger midpoint. A zero distance is skipped rather than zooming
// to the clamp.
func (g *session) pinchTo(a, b Point) {
	d := distance(a, b)
	if g.prevDist > 0 && d > 0 {
		g.vp.ZoomAt(midpoint(a, b).X, d/g.prevDist)
	}
	if d > 0 {
		g.prevDist = d
	}
}

func (g *session) end() {
	if g.ended {
		return
	}
	g.ended = true
	for i := len(g.teardown) - 1; i >= 0; i-- {
		g.teardown[i]()
	}
	g.teardown = nil
}
