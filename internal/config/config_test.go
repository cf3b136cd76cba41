package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memento/internal/timeline"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultWindow(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	w := cfg.Window()
	assert.Equal(t, time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC), w.Birth)
	assert.Equal(t, time.Date(2080, 1, 1, 0, 0, 0, 0, time.UTC), w.Death)
	assert.InDelta(t, 85, w.SpanYears(), 0.01)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := writeFile(t, "memento.yaml", "birth: 1970-06-15\nmode: deathdate\ndeath: 2050-06-15\nshow_soc: false\n")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ModeDeathDate, cfg.Mode)
	assert.True(t, cfg.ShowBio)
	assert.False(t, cfg.ShowSoc)
	assert.Equal(t, 85, cfg.Lifespan)
	assert.Equal(t, time.Date(2050, 6, 15, 0, 0, 0, 0, time.UTC), cfg.Window().Death)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "birth: 15/06/1970\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "mode.yaml", "mode: forever\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "empty.yaml", "mode: deathdate\nbirth: 2000-01-01\ndeath: 1999-01-01\n"))
	assert.ErrorIs(t, err, timeline.ErrEmptyWindow)
}

func TestLifespanClamped(t *testing.T) {
	cfg := Default()
	cfg.Lifespan = 500
	assert.Equal(t, 2115, cfg.Window().Death.Year())
	cfg.Lifespan = 1
	assert.Equal(t, 2025, cfg.Window().Death.Year())
	assert.Equal(t, 60, ClampLifespan(60))
}

func TestMilestonesFiltered(t *testing.T) {
	cfg := Default()
	cfg.ShowBio = false
	defs, err := cfg.Milestones()
	require.NoError(t, err)
	require.NotEmpty(t, defs)
	for _, d := range defs {
		assert.Equal(t, timeline.Soc, d.Kind)
	}

	cfg.Catalog = writeFile(t, "c.yaml", "milestones:\n  - label: x\n    age: 3\n    kind: soc\n")
	defs, err = cfg.Milestones()
	require.NoError(t, err)
	assert.Equal(t, []timeline.Milestone{timeline.PointAt("x", 3, timeline.Soc, 0, "")}, defs)

	cfg.Catalog = "nope.kml"
	_, err = cfg.Milestones()
	assert.ErrorIs(t, err, timeline.ErrUnsupportedCatalog)
}

func TestDateYAML(t *testing.T) {
	out, err := Default().Birth.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "1995-01-01", out)
	_, err = ParseDate("1995-13-01")
	assert.Error(t, err)
}
