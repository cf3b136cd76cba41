package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"memento/internal/canvas"
	"memento/internal/config"
	"memento/internal/timeline"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, mapWidth, mapHeight := m.canvasRect()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" memento ─ a life on one line ")
	header = lipgloss.JoinVertical(lipgloss.Left, header, dimStyle.Render(" "+m.summary()))
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(mapHeight).Render(m.l.View())
	}

	var mapView string
	switch {
	case m.showDates:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(mapWidth, max(32, colW+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(max(3, min(mapHeight-5, 20)))
		datesBox := boxStyle.Width(maxW).Render(titleStyle.Render("Milestones as Dates") + "\n" + m.tbl.View())
		mapView = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, datesBox)
	case m.pasteMode:
		// size textarea to map area
		m.ta.SetWidth(mapWidth)
		m.ta.SetHeight(min(mapHeight, 16))
		mapView = m.ta.View()
	default:
		var hv *canvas.Hover
		if h, ok := m.surface.Hover(); ok {
			hv = &h
		}
		g := renderTimeline(m.surface.Scene(), hv, mapWidth, mapHeight)
		if n := len(m.inspectPopup); n > 0 {
			drawBox(g, 1, mapHeight/2-n/2-1, 1, mapHeight-1, m.inspectPopup)
		}
		mapView = g.String()
	}
	mapView = lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(mapView)

	// Body row
	body := mapView
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	var status string
	switch {
	case m.editing != editNone:
		status = " " + m.status + "  " + m.input.View()
	case strings.Contains(m.status, "error"):
		status = errStyle.Render(" " + m.status + " ")
	default:
		status = dimStyle.Render(" " + m.status + " ")
	}
	// pointer instant at bottom-right
	cursor := ""
	if m.pointerIn {
		sc := m.surface.Scene()
		t := sc.InstantAt(m.pointerX)
		cursor = dimStyle.Render(fmt.Sprintf("  age %.1f  %s  ", timeline.AgeAt(sc.Window.Birth, t), timeline.FormatDate(t)))
	}
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(cursor))
	statusLine := status + strings.Repeat(" ", spacerW) + cursor
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, " "+m.help.View(keys))
	footer = lipgloss.NewStyle().Width(contentWidth).Render(footer)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// summary describes the personalised window: its bounds and span, the
// halfway instant, today and the current age.
func (m Model) summary() string {
	w := m.surface.Window()
	span := w.SpanYears()
	now := m.now()
	age := math.Max(0, math.Min(150, timeline.AgeAt(w.Birth, now)))
	mode := "death date"
	if m.cfg.Mode == config.ModeLifespan {
		mode = fmt.Sprintf("lifespan %dy", config.ClampLifespan(m.cfg.Lifespan))
	}
	parts := []string{
		timeline.FormatDate(w.Birth) + " → " + timeline.FormatDate(w.Death),
		fmt.Sprintf("span %.1fy", span),
		"50%: " + timeline.FormatDate(timeline.ToInstant(w.Birth, span/2)),
		"today " + timeline.FormatDate(now),
		fmt.Sprintf("age %.1f", age),
		mode,
		"bio " + onOff(m.cfg.ShowBio),
		"soc " + onOff(m.cfg.ShowSoc),
	}
	return strings.Join(parts, " · ")
}
