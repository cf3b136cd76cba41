package tui

import (
	"fmt"
	"math"
	"strings"

	"memento/internal/canvas"
	"memento/internal/timeline"
)

// cellGrid is the character canvas a frame is composed on. Cells written
// by text are marked so later labels do not overwrite earlier ones.
type cellGrid struct {
	w, h int
	r    [][]rune
	p    [][]paint
	text [][]bool
}

func newCellGrid(w, h int) *cellGrid {
	g := &cellGrid{w: w, h: h}
	g.r = make([][]rune, h)
	g.p = make([][]paint, h)
	g.text = make([][]bool, h)
	for y := 0; y < h; y++ {
		g.r[y] = []rune(strings.Repeat(" ", w))
		g.p[y] = make([]paint, w)
		g.text[y] = make([]bool, w)
	}
	return g
}

func (g *cellGrid) set(x, y int, r rune, p paint) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.r[y][x] = r
	g.p[y][x] = p
}

// free reports whether n cells from (x, y) are on the grid and hold no
// earlier text.
func (g *cellGrid) free(x, y, n int) bool {
	if y < 0 || y >= g.h || x < 0 || x+n > g.w {
		return false
	}
	for i := x; i < x+n; i++ {
		if g.text[y][i] {
			return false
		}
	}
	return true
}

// put writes s at (x, y) and marks the cells as text.
func (g *cellGrid) put(x, y int, s string, p paint) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, p)
		if x+i >= 0 && x+i < g.w && y >= 0 && y < g.h {
			g.text[y][x+i] = true
		}
	}
}

// putCentered writes s centred on column cx when the cells are free,
// leaving one blank column either side.
func (g *cellGrid) putCentered(cx, y int, s string, p paint) bool {
	n := len([]rune(s))
	x := cx - n/2
	if !g.free(x, y, n) {
		return false
	}
	if (x > 0 && g.text[y][x-1]) || (x+n < g.w && g.text[y][x+n]) {
		return false
	}
	g.put(x, y, s, p)
	return true
}

// String renders the grid as styled runs, one line per row.
func (g *cellGrid) String() string {
	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= g.w; x++ {
			if x < g.w && g.p[y][x] == g.p[y][start] {
				continue
			}
			run := string(g.r[y][start:x])
			if st, ok := paints[g.p[y][start]]; ok {
				run = st.Render(run)
			}
			sb.WriteString(run)
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// cellOf maps a surface pixel to its character cell.
func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / 2)), int(math.Floor(y / 4))
}

func markerPaint(k timeline.Kind) paint {
	if k == timeline.Bio {
		return paintBioMark
	}
	return paintSocMark
}

func bandPaint(b canvas.Band) paint {
	faint := b.Opacity < 0.7
	switch {
	case b.Kind == timeline.Bio && faint:
		return paintBioBandFaint
	case b.Kind == timeline.Bio:
		return paintBioBand
	case faint:
		return paintSocBandFaint
	default:
		return paintSocBand
	}
}

// renderTimeline composes one frame of sc on a cols x rows grid.
func renderTimeline(sc canvas.Scene, hv *canvas.Hover, cols, rows int) *cellGrid {
	g := newCellGrid(cols, rows)
	br := newBrailleBuf(cols, rows)
	l := sc.Layout
	hovered := -1
	if hv != nil {
		hovered = hv.Index
	}

	br.hline(sc.AxisX1, sc.AxisX2, l.TrackY, paintAxis)
	for _, t := range sc.Ticks {
		br.vline(t.X, l.TrackY-l.TickHalf, l.TrackY+l.TickHalf, 0, paintTick)
	}
	if sc.Today != nil {
		br.vline(sc.Today.X, 4, l.Height-5, 2, paintToday)
	}
	for _, b := range sc.Bands {
		p := bandPaint(b)
		if b.Index == hovered {
			p = paintHover
		}
		br.fillRect(b.X, b.Y-b.H/2, b.W, b.H, p)
	}
	for _, mk := range sc.Markers {
		p := markerPaint(mk.Kind)
		if mk.Index == hovered {
			p = paintHover
		}
		br.fillCircle(mk.X, mk.Y, mk.R, p)
	}
	br.composite(g)

	drawLegend(g)
	if sc.Today != nil {
		cx, _ := cellOf(sc.Today.X, 0)
		g.putCentered(cx, 0, "today", paintToday)
	}
	drawTickLabels(g, sc)
	drawBandLabels(g, sc)
	if hv != nil {
		title, detail := canvas.Tooltip(hv.Event)
		cx, cy := cellOf(hv.ScreenX, hv.ScreenY)
		drawBox(g, cx+2, cy+1, cx-1, cy-1, []string{title, detail})
	}
	return g
}

func drawLegend(g *cellGrid) {
	bio, soc := timeline.Bio.Title(), timeline.Soc.Title()
	n := len(bio) + len(soc) + 7
	x := g.w - n - 1
	if x < 0 || !g.free(x, 0, n) {
		return
	}
	g.put(x, 0, "●", paintBioMark)
	g.put(x+2, 0, bio, paintLabel)
	x += len(bio) + 5
	g.put(x, 0, "●", paintSocMark)
	g.put(x+2, 0, soc, paintLabel)
}

// drawTickLabels writes ages under the axis and years on the bottom row,
// skipping labels that would collide.
func drawTickLabels(g *cellGrid, sc canvas.Scene) {
	_, trackRow := cellOf(0, sc.Layout.TrackY)
	for _, t := range sc.Ticks {
		cx, _ := cellOf(t.X, 0)
		g.putCentered(cx, trackRow+1, fmt.Sprintf("%dy", t.Age), paintTick)
		if g.h > trackRow+2 {
			g.putCentered(cx, g.h-1, fmt.Sprint(t.Year), paintTick)
		}
	}
}

// drawBandLabels writes each label on the outer side of its band.
func drawBandLabels(g *cellGrid, sc canvas.Scene) {
	for _, b := range sc.Bands {
		cx, cy := cellOf(b.LabelX(), b.Y)
		label := truncate(sc.Events[b.Index].Label, max(int(b.W/2), 10))
		g.putCentered(cx, cy+b.Dir, label, paintLabel)
	}
}

// drawBox draws a bordered box at (x, y), falling back to the left of
// altX or above altY when it would leave the grid.
func drawBox(g *cellGrid, x, y, altX, altY int, lines []string) {
	inner := 0
	for _, s := range lines {
		inner = max(inner, len([]rune(s)))
	}
	inner = min(inner, g.w-4)
	if inner <= 0 {
		return
	}
	w, h := inner+4, len(lines)+2
	if x+w > g.w {
		x = altX - w
	}
	if y+h > g.h {
		y = altY - h + 1
	}
	x = max(0, min(x, g.w-w))
	y = max(0, min(y, g.h-h))

	g.put(x, y, "╭"+strings.Repeat("─", w-2)+"╮", paintTipBorder)
	for i, s := range lines {
		p := paintTipText
		if i == 0 {
			p = paintTipTitle
		}
		row := y + 1 + i
		g.put(x, row, "│ ", paintTipBorder)
		g.put(x+2, row, padRight(truncate(s, inner), inner), p)
		g.put(x+w-2, row, " │", paintTipBorder)
	}
	g.put(x, y+h-1, "╰"+strings.Repeat("─", w-2)+"╯", paintTipBorder)
}
