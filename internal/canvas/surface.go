package canvas

import (
	"time"

	"memento/internal/timeline"
)

// Surface is one interactive timeline canvas. It owns the viewport, the
// current scene, the hover payload and at most one gesture session. Every
// mutation rebuilds the scene before returning.
type Surface struct {
	vp     Viewport
	layout Layout
	window timeline.Window
	defs   []timeline.Milestone
	events []timeline.Event
	today  time.Time

	scene Scene

	hover     *Hover
	hits      []int
	pointer   Point
	pointerIn bool

	gesture  *session
	hooks    []gestureHook
	nextHook int
}

// gestureHook is one OnGestureEnd subscriber. Hooks run in registration
// order.
type gestureHook struct {
	id int
	fn func(GestureKind)
}

// NewSurface returns a surface with the identity viewport.
func NewSurface(l Layout, w timeline.Window) *Surface {
	s := &Surface{vp: NewViewport(), layout: l, window: w}
	s.rebuild()
	return s
}

func (s *Surface) rebuild() {
	s.scene = Build(Input{
		Window:   s.window,
		Events:   s.events,
		Viewport: s.vp,
		Layout:   s.layout,
		Today:    s.today,
	})
}

// SetWindow changes the life window and re-materializes every milestone.
func (s *Surface) SetWindow(w timeline.Window) {
	s.window = w
	s.events = timeline.Materialize(s.defs, w.Birth)
	s.clearHover()
	s.rebuild()
}

// SetMilestones replaces the (already filtered) milestone set.
func (s *Surface) SetMilestones(defs []timeline.Milestone) {
	s.defs = append([]timeline.Milestone(nil), defs...)
	s.events = timeline.Materialize(s.defs, s.window.Birth)
	s.clearHover()
	s.rebuild()
}

// SetToday moves the current-date marker.
func (s *Surface) SetToday(t time.Time) {
	s.today = t
	s.rebuild()
}

// setLayout swaps the layout without touching the viewport.
func (s *Surface) setLayout(l Layout) {
	s.layout = l
	s.rebuild()
	s.refreshHover()
}

// Resize changes the layout, keeping the zoom and the instant at the
// centre of the surface.
func (s *Surface) Resize(l Layout) {
	s.vp = s.vp.Refit(s.layout, l)
	s.setLayout(l)
}

// Viewport returns the current transform.
func (s *Surface) Viewport() Viewport { return s.vp }

// Layout returns the pixel geometry in use.
func (s *Surface) Layout() Layout { return s.layout }

// Window returns the life window.
func (s *Surface) Window() timeline.Window { return s.window }

// Events returns the materialized events, in catalog order.
func (s *Surface) Events() []timeline.Event { return s.events }

// Scene returns the last built frame.
func (s *Surface) Scene() Scene { return s.scene }

// Milestones returns the filtered milestone set the events came from.
func (s *Surface) Milestones() []timeline.Milestone { return s.defs }

// Hover returns the active hover or tap payload.
func (s *Surface) Hover() (Hover, bool) {
	if s.hover == nil {
		return Hover{}, false
	}
	return *s.hover, true
}

// Gesture reports the active session kind.
func (s *Surface) Gesture() GestureKind {
	if s.gesture == nil {
		return GestureNone
	}
	return s.gesture.kind
}

// OnGestureEnd registers fn to run whenever a session ends, however it
// ends. The returned func unregisters it.
func (s *Surface) OnGestureEnd(fn func(GestureKind)) (remove func()) {
	id := s.nextHook
	s.nextHook++
	s.hooks = append(s.hooks, gestureHook{id: id, fn: fn})
	return func() {
		for i, h := range s.hooks {
			if h.id == id {
				s.hooks = append(s.hooks[:i:i], s.hooks[i+1:]...)
				return
			}
		}
	}
}

// begin ends any running session and installs g.
func (s *Surface) begin(g *session) {
	s.endGesture()
	g.onEnd(func() {
		if s.gesture == g {
			s.gesture = nil
		}
		for _, h := range s.hooks {
			h.fn(g.kind)
		}
	})
	s.gesture = g
}

func (s *Surface) endGesture() {
	if s.gesture != nil {
		s.gesture.end()
	}
}

// rebaseGesture keeps a running pan from undoing a zoom or keyboard pan
// applied mid-drag.
func (s *Surface) rebaseGesture() {
	if g := s.gesture; g != nil && (g.kind == GestureDrag || g.kind == GestureTouchPan) {
		g.rebase()
	}
}

// Wheel applies one wheel tick anchored at screen X.
func (s *Surface) Wheel(x, deltaY float64) {
	s.vp.Wheel(x, deltaY)
	s.rebaseGesture()
	s.rebuild()
	s.refreshHover()
}

// ZoomStep is the zoom button: anchored at the surface centre.
func (s *Surface) ZoomStep(in bool) {
	s.vp.ZoomStep(s.layout.Width, in)
	s.rebaseGesture()
	s.rebuild()
	s.refreshHover()
}

// PanBy shifts the view, e.g. from arrow keys.
func (s *Surface) PanBy(dx float64) {
	s.vp.PanBy(dx)
	s.rebaseGesture()
	s.rebuild()
	s.refreshHover()
}

// PointerDown starts a drag session at (x, y).
func (s *Surface) PointerDown(x, y float64) {
	s.pointer, s.pointerIn = Point{x, y}, true
	s.begin(newPan(GestureDrag, &s.vp, x))
}

// PointerMove pans when a drag is active and updates hover. Moves are
// delivered even outside the surface while dragging.
func (s *Surface) PointerMove(x, y float64) {
	s.pointer, s.pointerIn = Point{x, y}, true
	if s.gesture != nil && s.gesture.kind == GestureDrag {
		s.gesture.panTo(x)
		s.rebuild()
	}
	s.resolveHover(x, y)
}

// PointerUp ends a drag.
func (s *Surface) PointerUp(x, y float64) {
	if s.gesture != nil && s.gesture.kind == GestureDrag {
		s.gesture.panTo(x)
		s.rebuild()
		s.endGesture()
	}
}

// PointerLeave clears the hover payload. A running drag keeps going.
func (s *Surface) PointerLeave() {
	s.pointerIn = false
	s.clearHover()
}

// TouchStart begins a touch pan (one finger) or pinch (two or more). A
// single-finger touch also acts as a tap for the hit test.
func (s *Surface) TouchStart(touches []Point) {
	switch {
	case len(touches) >= 2:
		s.begin(newPinch(&s.vp, touches[0], touches[1]))
	case len(touches) == 1:
		p := touches[0]
		s.begin(newPan(GestureTouchPan, &s.vp, p.X))
		s.tap(p.X, p.Y)
	}
}

// TouchMove follows the active touch session. A pinch that has lost its
// second finger simply ends.
func (s *Surface) TouchMove(touches []Point) {
	if s.gesture == nil {
		return
	}
	switch s.gesture.kind {
	case GesturePinch:
		if len(touches) < 2 {
			s.endGesture()
			return
		}
		s.gesture.pinchTo(touches[0], touches[1])
	case GestureTouchPan:
		if len(touches) == 0 {
			s.endGesture()
			return
		}
		s.gesture.panTo(touches[0].X)
	default:
		return
	}
	s.rebuild()
}

// TouchEnd is called with the touches still down.
func (s *Surface) TouchEnd(remaining []Point) {
	if s.gesture == nil {
		return
	}
	switch s.gesture.kind {
	case GesturePinch:
		if len(remaining) < 2 {
			s.endGesture()
		}
	case GestureTouchPan:
		if len(remaining) == 0 {
			s.endGesture()
		}
	}
}

// TouchCancel aborts any touch session.
func (s *Surface) TouchCancel() {
	if s.gesture != nil && s.gesture.kind != GestureDrag {
		s.endGesture()
	}
}

// tap sets the payload to the region under (x, y) or clears it.
func (s *Surface) tap(x, y float64) {
	idx, ok := s.scene.HitTest(x, y)
	if !ok {
		s.clearHover()
		return
	}
	s.hits = s.scene.HitsAt(x, y)
	s.setHover(idx, x, y)
}

// resolveHover picks the payload for a pointer at (x, y): a region the
// pointer just entered wins, then the current one if still under the
// pointer, then the topmost.
func (s *Surface) resolveHover(x, y float64) {
	hits := s.scene.HitsAt(x, y)
	prev := s.hits
	s.hits = hits
	pick := -1
	for i := len(hits) - 1; i >= 0; i-- {
		if !containsIndex(prev, hits[i]) {
			pick = hits[i]
			break
		}
	}
	if pick < 0 && s.hover != nil && containsIndex(hits, s.hover.Index) {
		pick = s.hover.Index
	}
	if pick < 0 && len(hits) > 0 {
		pick = hits[len(hits)-1]
	}
	if pick < 0 {
		s.hover = nil
		return
	}
	s.setHover(pick, x, y)
}

// refreshHover re-resolves the pointer hover against a rebuilt scene.
func (s *Surface) refreshHover() {
	if s.pointerIn {
		s.resolveHover(s.pointer.X, s.pointer.Y)
	}
}

func (s *Surface) setHover(idx int, x, y float64) {
	s.hover = &Hover{ScreenX: x, ScreenY: y, Index: idx, Event: s.events[idx]}
}

func (s *Surface) clearHover() {
	s.hover = nil
	s.hits = nil
}

func containsIndex(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
