package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memento/internal/canvas"
	"memento/internal/timeline"
)

func testScene(today time.Time) canvas.Scene {
	birth := time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)
	w := timeline.Window{Birth: birth, Death: timeline.ToInstant(birth, 100)}
	defs := []timeline.Milestone{
		timeline.PointAt("Walk & talk", 1, timeline.Bio, 0, ""),
		timeline.Between("School <K-12>", 5, 18, timeline.Soc, 3, "\"compulsory\""),
	}
	return canvas.Build(canvas.Input{
		Window:   w,
		Events:   timeline.Materialize(defs, birth),
		Viewport: canvas.NewViewport(),
		Layout:   canvas.DefaultLayout(),
		Today:    today,
	})
}

func render(t *testing.T, sc canvas.Scene) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sc))
	return buf.String()
}

func TestWriteIsWellFormed(t *testing.T) {
	out := render(t, testScene(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)))
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
	}
}

func TestWriteContents(t *testing.T) {
	out := render(t, testScene(time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)))

	assert.Contains(t, out, `width="1200" height="300"`)
	assert.Contains(t, out, "Walk &amp; talk")
	assert.Contains(t, out, "School &lt;K-12&gt;")
	assert.Contains(t, out, "&quot;compulsory&quot;")
	assert.Contains(t, out, ">10y<")
	assert.Contains(t, out, ">1995<")
	assert.Contains(t, out, ">Today<")
	assert.Contains(t, out, `opacity="1"`)
	assert.Contains(t, out, ">Biological<")
	assert.Contains(t, out, ">Sociological<")
	// one marker plus the two legend dots
	assert.Equal(t, 3, strings.Count(out, "<circle"))
}

func TestWriteOmitsTodayOutsideWindow(t *testing.T) {
	out := render(t, testScene(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.NotContains(t, out, ">Today<")
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.svg")
	require.NoError(t, Export(path, testScene(time.Time{})))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "</svg>\n"))

	err = Export(filepath.Join(t.TempDir(), "missing", "x.svg"), testScene(time.Time{}))
	assert.Error(t, err)
}
