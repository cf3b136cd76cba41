package tui

import (
	"io"
	"log/slog"
	"os"
	"time"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"memento/internal/canvas"
	"memento/internal/config"
	"memento/internal/timeline"
)

const (
	sidebarWidth = 28
	headerHeight = 2
)

// editField is the date being edited, if any.
type editField int

const (
	editNone editField = iota
	editBirth
	editDeath
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg     config.Config
	catalog []timeline.Milestone // unfiltered
	surface *canvas.Surface
	now     func() time.Time
	log     *slog.Logger

	// catalog explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// last pointer position over the canvas, in surface pixels
	pointerIn bool
	pointerX  float64

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// date editor
	editing editField
	input   textinput.Model

	// inspect popup
	inspectPopup []string

	// milestone dates table
	showDates bool
	tbl       table.Model

	help help.Model
}

// Option configures a Model.
type Option func(*Model)

// WithLogger routes model events to l.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.log = l }
}

// WithClock replaces time.Now for the today marker and current age.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithDir sets the directory the catalog explorer lists.
func WithDir(dir string) Option {
	return func(m *Model) { m.cwd = dir }
}

// New builds the model for cfg. Configuration or catalog problems fall
// back to the defaults and are reported on the status line.
func New(cfg config.Config, opts ...Option) Model {
	m := Model{
		helpVisible: false,
		status:      "memento ready",
		now:         time.Now,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	m.cwd, _ = os.Getwd()
	for _, o := range opts {
		o(&m)
	}
	if err := cfg.Validate(); err != nil {
		m.status = "config error: " + err.Error()
		cfg = config.Default()
	}
	m.cfg = cfg
	cat, err := cfg.LoadCatalog()
	if err != nil {
		m.status = "load error: " + err.Error()
		m.cfg.Catalog = ""
		cat = timeline.DefaultCatalog()
	}
	m.catalog = cat
	m.selPath = m.cfg.Catalog

	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Catalogs"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste a YAML milestone catalog. Ctrl+S to apply; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.MaxHeight = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// date input setup
	m.input = textinput.New()
	m.input.Placeholder = config.DateLayout
	m.input.CharLimit = len(config.DateLayout)
	m.input.Width = len(config.DateLayout) + 1
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.help = help.New()

	m.surface = m.newSurface(canvas.TerminalLayout(80, 20))
	m.refreshDir()
	return m
}

// newSurface creates a surface for the current config and catalog with
// the identity viewport.
func (m Model) newSurface(l canvas.Layout) *canvas.Surface {
	s := canvas.NewSurface(l, m.cfg.Window())
	s.SetMilestones(timeline.Filter(m.catalog, m.cfg.ShowBio, m.cfg.ShowSoc))
	s.SetToday(m.now())
	lg := m.log
	s.OnGestureEnd(func(k canvas.GestureKind) {
		lg.Debug("gesture end", "kind", k.String(), "scale", s.Viewport().Scale, "translate", s.Viewport().Translate)
	})
	return s
}

func (m Model) Init() tea.Cmd { return nil }

// Config returns the current host state, as it would be saved.
func (m Model) Config() config.Config { return m.cfg }

// Surface exposes the timeline surface.
func (m Model) Surface() *canvas.Surface { return m.surface }

// Status is the current status line text.
func (m Model) Status() string { return m.status }

// footerHeight is the status line plus the help block.
func (m Model) footerHeight() int {
	if !m.helpVisible {
		return 2
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n = max(n, len(col))
	}
	return 1 + n
}

// canvasRect is the timeline area in terminal cells. Update and View both
// go through it so mouse cells and rendered cells agree.
func (m Model) canvasRect() (x, y, w, h int) {
	if m.showSidebar {
		x = sidebarWidth + 1
	}
	w = max(10, m.width-x)
	h = max(4, m.height-headerHeight-m.footerHeight())
	return x, headerHeight, w, h
}

// fitSurface resizes the surface to the canvas area.
func (m *Model) fitSurface() {
	_, _, w, h := m.canvasRect()
	l := canvas.TerminalLayout(w, h)
	if l != m.surface.Layout() {
		m.surface.Resize(l)
	}
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, h-2)
	}
	m.help.Width = m.width
}
