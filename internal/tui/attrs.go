package tui

import (
	table "github.com/charmbracelet/bubbles/table"
)

// refreshDates rebuilds the milestone date table from the events on the
// surface. It reports false when there is nothing to list.
func (m *Model) refreshDates() bool {
	events := m.surface.Events()
	if len(events) == 0 {
		m.status = "no milestones shown"
		return false
	}
	cols := []table.Column{
		{Title: "Kind", Width: 4},
		{Title: "Milestone", Width: 26},
		{Title: "Date", Width: 27},
		{Title: "Note", Width: 30},
	}
	rows := make([]table.Row, 0, len(events))
	for _, ev := range events {
		rows = append(rows, table.Row{ev.Kind.String(), ev.Label, ev.When(), ev.Note})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
	m.tbl.GotoTop()
	m.status = "milestones as dates"
	return true
}
