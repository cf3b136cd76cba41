// Package svg renders a timeline scene as a standalone SVG document.
package svg

import (
	"fmt"
	"io"
	"os"
	"strings"

	"memento/internal/canvas"
	"memento/internal/timeline"
)

// Colors
const (
	axisColor     = "#cbd5e1" // slate-300
	ageColor      = "#475569" // slate-600
	yearColor     = "#94a3b8" // slate-400
	labelColor    = "#334155" // slate-700
	todayColor    = "#0ea5e9" // sky-500
	todayFill     = "#f0f9ff" // sky-50
	todayStroke   = "#7dd3fc" // sky-300
	todayText     = "#0369a1" // sky-700
	legendStroke  = "#e2e8f0" // slate-200
	bioMarker     = "#10b981" // emerald-500
	bioBandFill   = "#d1fae5" // emerald-100
	bioBandStroke = "#6ee7b7" // emerald-300
	socMarker     = "#6366f1" // indigo-500
	socBandFill   = "#e0e7ff" // indigo-100
	socBandStroke = "#a5b4fc" // indigo-300
)

func markerColor(k timeline.Kind) string {
	if k == timeline.Bio {
		return bioMarker
	}
	return socMarker
}

func bandColors(k timeline.Kind) (fill, stroke string) {
	if k == timeline.Bio {
		return bioBandFill, bioBandStroke
	}
	return socBandFill, socBandStroke
}

// Write renders sc to w.
func Write(w io.Writer, sc canvas.Scene) error {
	l := sc.Layout
	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<defs>
<style>
text { font-family: ui-sans-serif, system-ui, sans-serif; }
.age { font-size: 10px; fill: %s; }
.year { font-size: 9px; fill: %s; }
.label { font-size: 11px; font-weight: 500; fill: %s; }
</style>
</defs>
`, l.Width, l.Height, l.Width, l.Height, ageColor, yearColor, labelColor))

	// Axis
	svg.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%g" x2="%.2f" y2="%g" stroke="%s" stroke-width="2"/>`+"\n",
		sc.AxisX1, l.TrackY, sc.AxisX2, l.TrackY, axisColor))

	for _, t := range sc.Ticks {
		svg.WriteString(fmt.Sprintf(`<g transform="translate(%.2f, %g)">`, t.X, l.TrackY))
		svg.WriteString(fmt.Sprintf(`<line y1="%g" y2="%g" stroke="%s" stroke-width="1"/>`, -l.TickHalf, l.TickHalf, axisColor))
		svg.WriteString(fmt.Sprintf(`<text y="20" class="age" text-anchor="middle">%dy</text>`, t.Age))
		svg.WriteString(fmt.Sprintf(`<text y="34" class="year" text-anchor="middle">%d</text>`, t.Year))
		svg.WriteString("</g>\n")
	}

	if sc.Today != nil {
		svg.WriteString(fmt.Sprintf(`<g transform="translate(%.2f, 0)">`, sc.Today.X))
		svg.WriteString(fmt.Sprintf(`<line x1="0" y1="20" x2="0" y2="%g" stroke="%s" stroke-width="2" stroke-dasharray="4 3"/>`, l.Height-20, todayColor))
		svg.WriteString(fmt.Sprintf(`<rect x="-48" y="24" width="96" height="20" rx="6" fill="%s" stroke="%s"/>`, todayFill, todayStroke))
		svg.WriteString(fmt.Sprintf(`<text x="0" y="38" text-anchor="middle" font-size="11" fill="%s">Today</text>`, todayText))
		svg.WriteString("</g>\n")
	}

	for _, m := range sc.Markers {
		ev := sc.Events[m.Index]
		svg.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%g" r="%g" fill="%s"><title>%s</title></circle>`+"\n",
			m.X, m.Y, m.R, markerColor(m.Kind), escapeXML(tooltip(ev))))
	}

	for _, b := range sc.Bands {
		ev := sc.Events[b.Index]
		fill, stroke := bandColors(b.Kind)
		svg.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%g" rx="%g" fill="%s" stroke="%s" opacity="%g"><title>%s</title></rect>`+"\n",
			b.X, b.Y-b.H/2, b.W, b.H, b.H/2, fill, stroke, b.Opacity, escapeXML(tooltip(ev))))
		svg.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" class="label" text-anchor="middle">%s</text>`+"\n",
			b.LabelX(), b.Y-(b.H/2+4), escapeXML(ev.Label)))
	}

	writeLegend(&svg, l)
	svg.WriteString("</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

func writeLegend(svg *strings.Builder, l canvas.Layout) {
	svg.WriteString(fmt.Sprintf(`<g transform="translate(%g, 24)">`, l.Width-220))
	svg.WriteString(fmt.Sprintf(`<rect x="0" y="0" width="200" height="48" rx="10" fill="#ffffff" stroke="%s"/>`, legendStroke))
	svg.WriteString(fmt.Sprintf(`<circle cx="18" cy="16" r="5" fill="%s"/>`, bioMarker))
	svg.WriteString(fmt.Sprintf(`<rect x="12" y="28" width="40" height="8" rx="4" fill="%s" stroke="%s"/>`, bioBandFill, bioBandStroke))
	svg.WriteString(fmt.Sprintf(`<text x="60" y="20" class="label">%s</text>`, timeline.Bio.Title()))
	svg.WriteString(fmt.Sprintf(`<circle cx="138" cy="16" r="5" fill="%s"/>`, socMarker))
	svg.WriteString(fmt.Sprintf(`<rect x="132" y="28" width="40" height="8" rx="4" fill="%s" stroke="%s"/>`, socBandFill, socBandStroke))
	svg.WriteString(fmt.Sprintf(`<text x="60" y="36" class="label">%s</text>`, timeline.Soc.Title()))
	svg.WriteString("</g>\n")
}

func tooltip(ev timeline.Event) string {
	title, detail := canvas.Tooltip(ev)
	return title + "\n" + detail
}

// Export writes sc to the file at path.
func Export(path string, sc canvas.Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating svg file: %w", err)
	}
	if err := Write(f, sc); err != nil {
		f.Close()
		return fmt.Errorf("error writing svg file: %w", err)
	}
	return f.Close()
}

// escapeXML escapes special XML characters in a string.
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
