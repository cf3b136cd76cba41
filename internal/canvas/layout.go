package canvas

// Layout holds the pixel geometry of a surface. Index 0..2 of the
// importance tables is importance 1..3.
type Layout struct {
	Width, Height float64
	Padding       float64
	TrackY        float64
	LaneOffset    float64
	LaneGap       float64
	TickHalf      float64
	MarkerRadius  [3]float64
	BandHeight    [3]float64
	BandOpacity   [3]float64
	// HitSlop widens every hit region; coarse surfaces need it.
	HitSlop float64
}

// DefaultLayout is the 1200x300 pixel surface.
func DefaultLayout() Layout {
	return Layout{
		Width:        1200,
		Height:       300,
		Padding:      32,
		TrackY:       150,
		LaneOffset:   34,
		LaneGap:      18,
		TickHalf:     6,
		MarkerRadius: [3]float64{4, 5, 7},
		BandHeight:   [3]float64{10, 12, 14},
		BandOpacity:  [3]float64{0.6, 0.8, 1},
	}
}

// TerminalLayout fits a cols x rows character grid drawn with braille
// cells, i.e. 2x4 micro pixels per cell. The axis runs through the middle
// of the centre row with two cells of padding each side.
func TerminalLayout(cols, rows int) Layout {
	w := float64(cols * 2)
	h := float64(rows * 4)
	return Layout{
		Width:        w,
		Height:       h,
		Padding:      4,
		TrackY:       float64(rows/2*4 + 1),
		LaneOffset:   8,
		LaneGap:      8,
		TickHalf:     1,
		MarkerRadius: [3]float64{1, 1.5, 2},
		BandHeight:   [3]float64{2, 3, 3},
		BandOpacity:  [3]float64{0.6, 0.8, 1},
		HitSlop:      1,
	}
}
