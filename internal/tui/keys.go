package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding
	ToggleBio key.Binding
	ToggleSoc key.Binding
	Shorter   key.Binding
	Longer    key.Binding
	Mode      key.Binding
	Birth     key.Binding
	Death     key.Binding
	Dates     key.Binding
	Inspect   key.Binding
	Sidebar   key.Binding
	Open      key.Binding
	Paste     key.Binding
	Export    key.Binding
	Reset     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
	PanLeft:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan back")),
	PanRight:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan forward")),
	ToggleBio: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "biological")),
	ToggleSoc: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sociological")),
	Shorter:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "lifespan -1")),
	Longer:    key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "lifespan +1")),
	Mode:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "lifespan/death date")),
	Birth:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "birth date")),
	Death:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "death date")),
	Dates:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "dates")),
	Inspect:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inspect")),
	Sidebar:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "catalogs")),
	Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Paste:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
	Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export svg")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Help:      key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight, k.Inspect, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ZoomIn, k.ZoomOut, k.PanLeft, k.PanRight, k.Reset},
		{k.ToggleBio, k.ToggleSoc, k.Mode, k.Shorter, k.Longer},
		{k.Birth, k.Death, k.Dates, k.Inspect},
		{k.Sidebar, k.Open, k.Paste, k.Export, k.Help, k.Quit},
	}
}
