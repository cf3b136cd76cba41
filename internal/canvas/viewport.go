package canvas

import "math"

// Zoom limits and per-input factors.
const (
	MinScale     = 0.5
	MaxScale     = 6.0
	WheelFactor  = 1.1
	ButtonFactor = 1.2
)

// Viewport is a 1-D affine map from model pixels to screen pixels:
// screen = model*Scale + Translate. Translate is unbounded so content may
// be panned fully off screen.
type Viewport struct {
	Scale     float64
	Translate float64
}

// NewViewport returns the identity transform.
func NewViewport() Viewport { return Viewport{Scale: 1} }

func clampScale(s float64) float64 { return math.Max(MinScale, math.Min(MaxScale, s)) }

// ZoomAt multiplies the scale by factor, clamped to [MinScale, MaxScale],
// keeping the model point under anchor at the same screen position.
func (v *Viewport) ZoomAt(anchor, factor float64) {
	next := clampScale(v.Scale * factor)
	k := next / v.Scale
	v.Translate = anchor - k*(anchor-v.Translate)
	v.Scale = next
}

// PanBy shifts the view by dx screen pixels.
func (v *Viewport) PanBy(dx float64) { v.Translate += dx }

// Wheel applies one wheel tick at the pointer. Negative deltaY zooms in.
func (v *Viewport) Wheel(anchor, deltaY float64) {
	if deltaY < 0 {
		v.ZoomAt(anchor, WheelFactor)
	} else {
		v.ZoomAt(anchor, 1/WheelFactor)
	}
}

// ZoomStep is the discrete zoom button, anchored at the horizontal center
// of a surface width pixels wide.
func (v *Viewport) ZoomStep(width float64, in bool) {
	if in {
		v.ZoomAt(width/2, ButtonFactor)
	} else {
		v.ZoomAt(width/2, 1/ButtonFactor)
	}
}

// ScreenX maps a model pixel to the screen.
func (v Viewport) ScreenX(modelX float64) float64 { return modelX*v.Scale + v.Translate }

// ModelX is the inverse of ScreenX.
func (v Viewport) ModelX(screenX float64) float64 { return (screenX - v.Translate) / v.Scale }

// Refit carries v from a surface laid out as from to one laid out as to.
// The scale is kept and the instant under the centre of from lands on the
// centre of to. Padding need not scale with width.
func (v Viewport) Refit(from, to Layout) Viewport {
	model := v.ModelX(from.Width / 2)
	frac := (model - from.Padding) / (from.Width - 2*from.Padding)
	next := to.Padding + frac*(to.Width-2*to.Padding)
	return Viewport{Scale: v.Scale, Translate: to.Width/2 - next*v.Scale}
}
