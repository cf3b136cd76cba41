package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"memento/internal/timeline"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !timeline.IsCatalogFile(name) {
			continue
		}
		items = append(items, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.items = items
	m.l.SetItems(items)
	if len(items) == 0 && m.showSidebar {
		m.status = "no catalogs in current directory"
	}
}

// loadPath replaces the catalog with the file at p.
func (m *Model) loadPath(p string) {
	defs, err := timeline.LoadCatalog(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		m.log.Warn("catalog load failed", "path", p, "err", err)
		return
	}
	m.setCatalog(defs, p)
	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  milestones: %d", len(defs))
}
