package tui

import "math"

// brailleBuf is a 2x4 micro-pixel canvas per character cell. Each cell
// keeps the paint of the last pixel set in it.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
	p    [][]paint
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	p := make([][]paint, h)
	for i := range m {
		m[i] = make([]uint8, w)
		p[i] = make([]paint, w)
	}
	return &brailleBuf{w: w, h: h, m: m, p: p}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, c paint) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.p[cy][cx] = c
}

// span clips a float pixel range to the buffer and rounds it inward.
func span(a, b float64, limit int) (int, int) {
	lo := int(math.Max(0, math.Round(math.Min(a, b))))
	hi := int(math.Min(float64(limit-1), math.Round(math.Max(a, b))))
	return lo, hi
}

// hline draws a horizontal run at micro row y.
func (b *brailleBuf) hline(x0, x1, y float64, c paint) {
	lo, hi := span(x0, x1, b.w*2)
	yy := int(math.Round(y))
	for x := lo; x <= hi; x++ {
		b.setPixel(x, yy, c)
	}
}

// vline draws a vertical run at micro column x; dash > 0 skips every
// other dash-long segment.
func (b *brailleBuf) vline(x, y0, y1 float64, dash int, c paint) {
	lo, hi := span(y0, y1, b.h*4)
	xx := int(math.Round(x))
	for y := lo; y <= hi; y++ {
		if dash > 0 && (y/dash)%2 == 1 {
			continue
		}
		b.setPixel(xx, y, c)
	}
}

// fillRect fills [x, x+w] x [y, y+h]. Zero-width bands still get one
// column so short intervals stay visible.
func (b *brailleBuf) fillRect(x, y, w, h float64, c paint) {
	x0, x1 := span(x, x+w, b.w*2)
	y0, y1 := span(y, y+h, b.h*4)
	for yy := y0; yy <= y1; yy++ {
		for xx := x0; xx <= x1; xx++ {
			b.setPixel(xx, yy, c)
		}
	}
}

// fillCircle fills a disc of radius r around (cx, cy).
func (b *brailleBuf) fillCircle(cx, cy, r float64, c paint) {
	x0, x1 := span(cx-r, cx+r, b.w*2)
	y0, y1 := span(cy-r, cy+r, b.h*4)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r+0.5 {
				b.setPixel(x, y, c)
			}
		}
	}
}

// composite copies non-empty braille cells into g.
func (b *brailleBuf) composite(g *cellGrid) {
	for y := 0; y < b.h && y < g.h; y++ {
		for x := 0; x < b.w && x < g.w; x++ {
			if mask := b.m[y][x]; mask != 0 {
				g.set(x, y, rune(0x2800+int(mask)), b.p[y][x])
			}
		}
	}
}
