package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	bioFg    = lipgloss.Color("#10B981") // emerald-500
	bioBand  = lipgloss.Color("#6EE7B7") // emerald-300
	socFg    = lipgloss.Color("#6366F1") // indigo-500
	socBand  = lipgloss.Color("#A5B4FC") // indigo-300
	axisFg   = lipgloss.Color("#CBD5E1") // slate-300
	tickFg   = lipgloss.Color("#94A3B8") // slate-400
	todayFg  = lipgloss.Color("#0EA5E9") // sky-500
	hoverFg  = lipgloss.Color("#FFA500")
	tooltipB = lipgloss.Color("#334155")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

// paint is the style of one canvas cell.
type paint uint8

const (
	paintNone paint = iota
	paintAxis
	paintTick
	paintToday
	paintBioMark
	paintSocMark
	paintBioBand
	paintSocBand
	paintBioBandFaint
	paintSocBandFaint
	paintLabel
	paintHover
	paintTipBorder
	paintTipTitle
	paintTipText
)

var paints = map[paint]lipgloss.Style{
	paintAxis:         lipgloss.NewStyle().Foreground(axisFg),
	paintTick:         lipgloss.NewStyle().Foreground(tickFg),
	paintToday:        lipgloss.NewStyle().Foreground(todayFg),
	paintBioMark:      lipgloss.NewStyle().Foreground(bioFg),
	paintSocMark:      lipgloss.NewStyle().Foreground(socFg),
	paintBioBand:      lipgloss.NewStyle().Foreground(bioBand),
	paintSocBand:      lipgloss.NewStyle().Foreground(socBand),
	paintBioBandFaint: lipgloss.NewStyle().Foreground(bioBand).Faint(true),
	paintSocBandFaint: lipgloss.NewStyle().Foreground(socBand).Faint(true),
	paintLabel:        lipgloss.NewStyle().Foreground(baseFg),
	paintHover:        lipgloss.NewStyle().Foreground(hoverFg).Bold(true),
	paintTipBorder:    lipgloss.NewStyle().Foreground(tooltipB),
	paintTipTitle:     lipgloss.NewStyle().Foreground(baseFg).Bold(true),
	paintTipText:      lipgloss.NewStyle().Foreground(baseDimFg),
}
