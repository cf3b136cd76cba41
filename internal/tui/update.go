package tui

import (
	"fmt"
	"strings"

	key "github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"memento/internal/canvas"
	"memento/internal/config"
	"memento/internal/svg"
	"memento/internal/timeline"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fitSurface()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.editing != editNone {
			return m.updateEdit(msg)
		}
		if m.showDates {
			return m.updateDates(msg)
		}
		if len(m.inspectPopup) > 0 && msg.String() == "esc" {
			m.inspectPopup = nil
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.ZoomIn):
			m.surface.ZoomStep(true)
			m.status = fmt.Sprintf("zoom: %.2fx", m.surface.Viewport().Scale)
		case key.Matches(msg, keys.ZoomOut):
			m.surface.ZoomStep(false)
			m.status = fmt.Sprintf("zoom: %.2fx", m.surface.Viewport().Scale)
		case key.Matches(msg, keys.PanLeft):
			m.surface.PanBy(m.panStep())
		case key.Matches(msg, keys.PanRight):
			m.surface.PanBy(-m.panStep())
		case key.Matches(msg, keys.ToggleBio):
			m.cfg.ShowBio = !m.cfg.ShowBio
			m.applyMilestones()
			m.status = "biological: " + onOff(m.cfg.ShowBio)
		case key.Matches(msg, keys.ToggleSoc):
			m.cfg.ShowSoc = !m.cfg.ShowSoc
			m.applyMilestones()
			m.status = "sociological: " + onOff(m.cfg.ShowSoc)
		case key.Matches(msg, keys.Shorter):
			m.setLifespan(m.cfg.Lifespan - 1)
		case key.Matches(msg, keys.Longer):
			m.setLifespan(m.cfg.Lifespan + 1)
		case key.Matches(msg, keys.Mode):
			m.toggleMode()
		case key.Matches(msg, keys.Birth):
			m.startEdit(editBirth)
		case key.Matches(msg, keys.Death):
			m.startEdit(editDeath)
		case key.Matches(msg, keys.Dates):
			m.showDates = m.refreshDates()
		case key.Matches(msg, keys.Inspect):
			if len(m.inspectPopup) > 0 {
				m.inspectPopup = nil
			} else {
				m.inspect()
			}
		case key.Matches(msg, keys.Sidebar):
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
			m.fitSurface()
		case key.Matches(msg, keys.Open):
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case key.Matches(msg, keys.Paste):
			m.startPaste()
		case key.Matches(msg, keys.Export):
			m.export()
		case key.Matches(msg, keys.Reset):
			m.surface = m.newSurface(m.surface.Layout())
			m.status = "view reset"
		case key.Matches(msg, keys.Help):
			m.helpVisible = !m.helpVisible
			m.help.ShowAll = m.helpVisible
			m.fitSurface()
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateMouse maps terminal cells onto surface pixels: each cell is 2x4
// pixels and events land on the cell centre.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	if m.pasteMode || m.showDates || m.editing != editNone {
		return
	}
	ox, oy, w, h := m.canvasRect()
	cx, cy := msg.X-ox, msg.Y-oy
	inside := cx >= 0 && cx < w && cy >= 0 && cy < h
	px, py := float64(cx*2+1), float64(cy*4+2)
	s := m.surface
	dragging := s.Gesture() == canvas.GestureDrag

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if inside && msg.Action == tea.MouseActionPress {
			dy := 1.0
			if msg.Button == tea.MouseButtonWheelUp {
				dy = -1
			}
			s.Wheel(px, dy)
			m.status = fmt.Sprintf("zoom: %.2fx", s.Viewport().Scale)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			s.PointerDown(px, py)
		}
	case msg.Action == tea.MouseActionRelease:
		if dragging {
			s.PointerUp(px, py)
		}
	case msg.Action == tea.MouseActionMotion:
		switch {
		case inside || dragging:
			s.PointerMove(px, py)
		case m.pointerIn:
			s.PointerLeave()
		}
	}
	m.pointerIn = inside
	m.pointerX = px
}

// panStep is a tenth of the canvas width.
func (m Model) panStep() float64 { return m.surface.Layout().Width / 10 }

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// applyMilestones pushes the filtered catalog to the surface.
func (m *Model) applyMilestones() {
	defs := timeline.Filter(m.catalog, m.cfg.ShowBio, m.cfg.ShowSoc)
	m.surface.SetMilestones(defs)
	if m.showDates {
		m.showDates = m.refreshDates()
	}
	m.inspectPopup = nil
}

// applyConfig validates next and makes it current, or keeps the current
// config and reports why not.
func (m *Model) applyConfig(next config.Config) bool {
	if err := next.Validate(); err != nil {
		m.status = "window error: " + err.Error()
		return false
	}
	m.cfg = next
	w := next.Window()
	m.surface.SetWindow(w)
	m.inspectPopup = nil
	if m.showDates {
		m.showDates = m.refreshDates()
	}
	m.log.Info("window changed", "birth", timeline.FormatDate(w.Birth), "death", timeline.FormatDate(w.Death))
	return true
}

func (m *Model) setLifespan(years int) {
	if m.cfg.Mode != config.ModeLifespan {
		m.status = "lifespan applies in lifespan mode (m)"
		return
	}
	next := m.cfg
	next.Lifespan = config.ClampLifespan(years)
	if m.applyConfig(next) {
		m.status = fmt.Sprintf("lifespan: %dy", next.Lifespan)
	}
}

// toggleMode switches between lifespan and death-date mode. Entering
// death-date mode without a usable death date carries the current one over.
func (m *Model) toggleMode() {
	next := m.cfg
	if next.Mode == config.ModeLifespan {
		next.Mode = config.ModeDeathDate
		if !next.Death.After(next.Birth.Time) {
			next.Death = config.Date{Time: m.cfg.Window().Death}
		}
	} else {
		next.Mode = config.ModeLifespan
	}
	if m.applyConfig(next) {
		m.status = "mode: " + string(next.Mode)
	}
}

func (m *Model) startEdit(f editField) {
	m.editing = f
	d := m.cfg.Birth.Time
	what := "birth"
	if f == editDeath {
		d = m.cfg.Window().Death
		what = "death"
	}
	m.input.SetValue(d.Format(config.DateLayout))
	m.input.CursorEnd()
	m.input.Focus()
	m.status = "edit " + what + " date (YYYY-MM-DD): enter to apply, esc to cancel"
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = editNone
		m.input.Blur()
		m.status = "edit cancelled"
		return m, nil
	case "enter":
		d, err := config.ParseDate(m.input.Value())
		if err != nil {
			m.status = "date error: " + err.Error()
			return m, nil
		}
		next := m.cfg
		what := "birth"
		if m.editing == editBirth {
			next.Birth = config.Date{Time: d}
		} else {
			// an explicit death date implies death-date mode
			next.Death = config.Date{Time: d}
			next.Mode = config.ModeDeathDate
			what = "death"
		}
		if !m.applyConfig(next) {
			return m, nil
		}
		m.status = what + ": " + timeline.FormatDate(d)
		m.editing = editNone
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) startPaste() {
	m.pasteMode = true
	data, _ := timeline.MarshalYAML(m.catalog)
	m.ta.SetValue(string(data))
	m.ta.Focus()
	m.status = "paste mode"
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		v := strings.TrimSpace(m.ta.Value())
		if v == "" {
			m.status = "paste: empty"
			return m, nil
		}
		defs, err := timeline.ParseYAML([]byte(v))
		if err != nil {
			m.status = "yaml error: " + err.Error()
			return m, nil
		}
		m.setCatalog(defs, "")
		m.status = fmt.Sprintf("pasted catalog: %d milestones", len(defs))
		m.pasteMode = false
		m.ta.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateDates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case msg.String() == "esc", key.Matches(msg, keys.Dates):
		m.showDates = false
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// setCatalog replaces the unfiltered catalog. path is empty for pasted
// catalogs.
func (m *Model) setCatalog(defs []timeline.Milestone, path string) {
	m.catalog = defs
	m.selPath = path
	m.cfg.Catalog = path
	m.applyMilestones()
	m.log.Info("catalog loaded", "path", path, "milestones", len(defs))
}

// inspect opens the popup for the event nearest the canvas centre.
func (m *Model) inspect() {
	sc := m.surface.Scene()
	idx, ok := sc.Nearest(sc.Layout.Width / 2)
	if !ok {
		m.inspectPopup = []string{"no milestone nearby"}
		m.status = m.inspectPopup[0]
		return
	}
	ev := sc.Events[idx]
	lines := []string{
		ev.Label,
		"kind: " + ev.Kind.Title(),
		"when: " + ev.When(),
		fmt.Sprintf("importance: %d", ev.Importance.Level()),
	}
	if ev.IsInterval() {
		lines = append(lines,
			fmt.Sprintf("ages: %g-%gy", ev.StartAge, ev.EndAge),
			fmt.Sprintf("lane: %d", sc.Lanes[idx]))
	} else {
		lines = append(lines, fmt.Sprintf("age: %gy", ev.Age))
	}
	if ev.Note != "" {
		lines = append(lines, "note: "+ev.Note)
	}
	m.inspectPopup = lines
	m.status = "inspect: " + ev.Label
}

// exportScene rebuilds the current view on the default layout, keeping the
// zoom and the instant at the centre.
func (m *Model) exportScene() canvas.Scene {
	sc := m.surface.Scene()
	out := canvas.DefaultLayout()
	return canvas.Build(canvas.Input{
		Window:   sc.Window,
		Events:   sc.Events,
		Viewport: sc.Viewport.Refit(sc.Layout, out),
		Layout:   out,
		Today:    m.now(),
	})
}

// export writes the current view as SVG.
func (m *Model) export() {
	full := m.exportScene()
	if err := svg.Export(m.cfg.Export, full); err != nil {
		m.status = "export error: " + err.Error()
		m.log.Error("export failed", "path", m.cfg.Export, "err", err)
		return
	}
	m.status = "exported: " + m.cfg.Export
	m.log.Info("exported", "path", m.cfg.Export, "events", len(full.Events))
}
