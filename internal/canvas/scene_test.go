package canvas

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memento/internal/timeline"
)

var birth = time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)

func century() timeline.Window {
	return timeline.Window{Birth: birth, Death: timeline.ToInstant(birth, 100)}
}

func build(defs []timeline.Milestone, vp Viewport) Scene {
	w := century()
	return Build(Input{Window: w, Events: timeline.Materialize(defs, w.Birth), Viewport: vp, Layout: DefaultLayout()})
}

func TestBuildOverlappingBandsGetSeparateLanes(t *testing.T) {
	sc := build([]timeline.Milestone{
		timeline.Between("a", 20, 30, timeline.Soc, 2, ""),
		timeline.Between("b", 25, 35, timeline.Soc, 2, ""),
	}, NewViewport())
	require.Len(t, sc.Bands, 2)
	assert.Equal(t, 0, sc.Bands[0].Lane)
	assert.Equal(t, 1, sc.Bands[1].Lane)
	assert.Equal(t, 1, sc.Bands[0].Dir)
	assert.InDelta(t, 150+34, sc.Bands[0].Y, 1e-9)
	assert.InDelta(t, 150+34+18, sc.Bands[1].Y, 1e-9)
}

func TestBuildKindsStackOnOppositeSides(t *testing.T) {
	sc := build([]timeline.Milestone{
		timeline.Between("bio", 20, 30, timeline.Bio, 3, ""),
		timeline.Between("soc", 20, 30, timeline.Soc, 1, ""),
	}, NewViewport())
	require.Len(t, sc.Bands, 2)
	bio, soc := sc.Bands[0], sc.Bands[1]
	assert.Equal(t, 0, bio.Lane)
	assert.Equal(t, 0, soc.Lane)
	assert.Less(t, bio.Y, 150.0)
	assert.Greater(t, soc.Y, 150.0)
	assert.Equal(t, 14.0, bio.H)
	assert.Equal(t, 1.0, bio.Opacity)
	assert.Equal(t, 10.0, soc.H)
	assert.Equal(t, 0.6, soc.Opacity)
}

func TestBuildProjectsThroughViewport(t *testing.T) {
	defs := []timeline.Milestone{timeline.PointAt("mid", 50, timeline.Bio, 3, "")}
	sc := build(defs, NewViewport())
	require.Len(t, sc.Markers, 1)
	assert.InDelta(t, 600, sc.Markers[0].X, 1e-6)
	assert.Equal(t, 7.0, sc.Markers[0].R)

	vp := Viewport{Scale: 2, Translate: -300}
	sc = build(defs, vp)
	assert.InDelta(t, 600*2-300, sc.Markers[0].X, 1e-6)
	assert.InDelta(t, 32*2-300, sc.AxisX1, 1e-9)
	assert.InDelta(t, 1168*2-300, sc.AxisX2, 1e-9)
}

func TestBuildInvertedIntervalStillRenders(t *testing.T) {
	sc := build([]timeline.Milestone{timeline.Between("flip", 40, 30, timeline.Bio, 2, "")}, NewViewport())
	require.Len(t, sc.Bands, 1)
	b := sc.Bands[0]
	assert.Greater(t, b.W, 0.0)
	assert.InDelta(t, sc.XFor(timeline.ToInstant(birth, 30)), b.X, 1e-6)
}

func TestBuildTicksFollowScale(t *testing.T) {
	sc := build(nil, NewViewport())
	require.Len(t, sc.Ticks, 11)
	assert.Equal(t, 1995, sc.Ticks[0].Year)
	assert.InDelta(t, 32, sc.Ticks[0].X, 1e-9)
	zoomed := build(nil, Viewport{Scale: 4})
	assert.Len(t, zoomed.Ticks, 21)
}

func TestBuildTodayOnlyInsideWindow(t *testing.T) {
	w := century()
	in := Input{Window: w, Layout: DefaultLayout(), Viewport: NewViewport(), Today: timeline.ToInstant(birth, 25)}
	sc := Build(in)
	require.NotNil(t, sc.Today)
	assert.InDelta(t, 32+1136*0.25, sc.Today.X, 1e-6)

	in.Today = birth.AddDate(-1, 0, 0)
	assert.Nil(t, Build(in).Today)
	in.Today = time.Time{}
	assert.Nil(t, Build(in).Today)
}

func TestInstantAtInvertsXFor(t *testing.T) {
	sc := build(nil, Viewport{Scale: 3.3, Translate: -812})
	at := timeline.ToInstant(birth, 41.7)
	assert.WithinDuration(t, at, sc.InstantAt(sc.XFor(at)), time.Second)
}

func TestNearest(t *testing.T) {
	sc := build([]timeline.Milestone{
		timeline.PointAt("p", 10, timeline.Soc, 2, ""),
		timeline.Between("r", 40, 60, timeline.Bio, 2, ""),
	}, NewViewport())
	idx, ok := sc.Nearest(600)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	idx, _ = sc.Nearest(100)
	assert.Equal(t, 0, idx)
	_, ok = build(nil, NewViewport()).Nearest(0)
	assert.False(t, ok)
}

func TestTooltip(t *testing.T) {
	evs := timeline.Materialize([]timeline.Milestone{
		timeline.PointAt("School", 0, timeline.Soc, 2, ""),
		timeline.PointAt("Peak", 0, timeline.Bio, 2, "noted"),
		timeline.Between("Span", 0, 0, timeline.Bio, 2, ""),
		timeline.Between("Span", 0, 0, timeline.Bio, 2, "why"),
	}, birth)
	title, detail := Tooltip(evs[0])
	assert.Equal(t, "School", title)
	assert.Equal(t, "Jan 1, 1995 • Sociological", detail)
	_, detail = Tooltip(evs[1])
	assert.Equal(t, "Jan 1, 1995 • noted", detail)
	_, detail = Tooltip(evs[2])
	assert.Equal(t, "Jan 1, 1995 → Jan 1, 1995", detail)
	_, detail = Tooltip(evs[3])
	assert.Equal(t, "Jan 1, 1995 → Jan 1, 1995 • why", detail)
}
