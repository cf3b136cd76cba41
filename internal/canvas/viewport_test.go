package canvas

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"memento/internal/timeline"
)

func TestWheelZoomInAtPointer(t *testing.T) {
	vp := NewViewport()
	vp.Wheel(600, -1)
	assert.InDelta(t, 1.1, vp.Scale, 1e-12)
	assert.InDelta(t, -60, vp.Translate, 1e-9)

	vp.Wheel(600, 1)
	assert.InDelta(t, 1.0, vp.Scale, 1e-12)
	assert.InDelta(t, 0, vp.Translate, 1e-9)
}

func TestZoomAtKeepsAnchor(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		vp := Viewport{Scale: MinScale + rng.Float64()*(MaxScale-MinScale), Translate: rng.Float64()*4000 - 2000}
		anchor := rng.Float64() * 1200
		factor := 0.1 + rng.Float64()*10
		model := vp.ModelX(anchor)
		vp.ZoomAt(anchor, factor)
		assert.InDelta(t, anchor, vp.ScreenX(model), 1e-6)
	}
}

func TestZoomBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	vp := NewViewport()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			vp.Wheel(rng.Float64()*1200, rng.Float64()-0.5)
		case 1:
			vp.ZoomStep(1200, rng.Intn(2) == 0)
		case 2:
			vp.ZoomAt(rng.Float64()*1200, rng.Float64()*20)
		default:
			vp.PanBy(rng.Float64()*200 - 100)
		}
		assert.GreaterOrEqual(t, vp.Scale, MinScale)
		assert.LessOrEqual(t, vp.Scale, MaxScale)
	}
}

func TestZoomClampsSilently(t *testing.T) {
	vp := NewViewport()
	vp.ZoomAt(100, 100)
	assert.Equal(t, MaxScale, vp.Scale)
	vp.ZoomAt(100, 0.0001)
	assert.Equal(t, MinScale, vp.Scale)
}

func TestZoomStepAnchorsAtCentre(t *testing.T) {
	vp := NewViewport()
	centre := vp.ModelX(600)
	vp.ZoomStep(1200, true)
	assert.InDelta(t, 1.2, vp.Scale, 1e-12)
	assert.InDelta(t, 600, vp.ScreenX(centre), 1e-9)
	vp.ZoomStep(1200, false)
	assert.InDelta(t, 1.0, vp.Scale, 1e-12)
}

func TestPanUnbounded(t *testing.T) {
	vp := NewViewport()
	vp.PanBy(-1e6)
	assert.Equal(t, -1e6, vp.Translate)
}

func TestRefitKeepsCentreInstant(t *testing.T) {
	w := century()
	from := TerminalLayout(160, 26)
	vp := Viewport{Scale: 2.5, Translate: -140}
	before := Build(Input{Window: w, Viewport: vp, Layout: from}).InstantAt(from.Width / 2)

	for _, to := range []Layout{TerminalLayout(80, 26), TerminalLayout(211, 40), DefaultLayout()} {
		r := vp.Refit(from, to)
		assert.Equal(t, vp.Scale, r.Scale)
		after := Build(Input{Window: w, Viewport: r, Layout: to}).InstantAt(to.Width / 2)
		assert.InDelta(t, 0, timeline.YearsBetween(before, after), 1e-9, "to width %g", to.Width)
	}
}
