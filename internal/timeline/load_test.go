package timeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
milestones:
  - label: Infancy
    range: {start_age: 0, end_age: 1}
    kind: bio
    importance: 3
    note: Sleep dominates.
  - label: Finish high school
    age: 18
    kind: soc
`

func TestParseYAML(t *testing.T) {
	defs, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, Between("Infancy", 0, 1, Bio, 3, "Sleep dominates."), defs[0])
	assert.Equal(t, PointAt("Finish high school", 18, Soc, 0, ""), defs[1])
	assert.Equal(t, 2, defs[1].Importance.Level())
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"no label":  "milestones:\n  - age: 3\n    kind: bio\n",
		"bad kind":  "milestones:\n  - label: x\n    age: 3\n    kind: astro\n",
		"both":      "milestones:\n  - label: x\n    age: 3\n    range: {start_age: 1, end_age: 2}\n    kind: bio\n",
		"neither":   "milestones:\n  - label: x\n    kind: bio\n",
		"bad imp":   "milestones:\n  - label: x\n    age: 1\n    kind: bio\n    importance: 9\n",
		"empty doc": "milestones: []\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(doc))
			require.Error(t, err)
		})
	}
	_, err := ParseYAML([]byte("milestones:\n  - label: x\n    kind: bio\n"))
	assert.ErrorIs(t, err, ErrBadMilestone)
}

func TestParseJSON(t *testing.T) {
	obj := `{"milestones":[{"label":"Medicare eligibility","age":65,"kind":"soc","importance":2}]}`
	defs, err := ParseJSON([]byte(obj))
	require.NoError(t, err)
	assert.Equal(t, []Milestone{PointAt("Medicare eligibility", 65, Soc, 2, "")}, defs)

	arr := `[{"label":"Peak earnings","range":{"start_age":45,"end_age":55},"kind":"soc"}]`
	defs, err = ParseJSON([]byte(arr))
	require.NoError(t, err)
	assert.Equal(t, []Milestone{Between("Peak earnings", 45, 55, Soc, 0, "")}, defs)

	_, err = ParseJSON([]byte(`{"milestones":`))
	assert.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	doc := "Label,Kind,Importance,Age,Start_Age,End_Age,Note\n" +
		"Start primary school,soc,2,5,,,Year 1.\n" +
		"Puberty window,bio,3,,10,14,\n"
	defs, err := ParseCSV(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []Milestone{
		PointAt("Start primary school", 5, Soc, 2, "Year 1."),
		Between("Puberty window", 10, 14, Bio, 3, ""),
	}, defs)

	_, err = ParseCSV(strings.NewReader("label,kind,start_age\nx,bio,3\n"))
	assert.ErrorIs(t, err, ErrBadMilestone)
	_, err = ParseCSV(strings.NewReader("kind,age\nbio,3\n"))
	assert.Error(t, err)
	_, err = ParseCSV(strings.NewReader("label,kind,age\nx,bio,three\n"))
	assert.Error(t, err)
}

func TestLoadCatalogByExtension(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	y := write("c.yml", sampleYAML)
	j := write("c.json", `[{"label":"a","age":1,"kind":"bio"}]`)
	c := write("c.csv", "label,kind,age\na,bio,1\n")
	txt := write("c.txt", "nope")

	for _, p := range []string{y, j, c} {
		defs, err := LoadCatalog(p)
		require.NoError(t, err, p)
		assert.NotEmpty(t, defs)
	}
	_, err := LoadCatalog(txt)
	assert.ErrorIs(t, err, ErrUnsupportedCatalog)
	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.True(t, IsCatalogFile("X.YAML"))
	assert.False(t, IsCatalogFile("x.kml"))
}

func TestMarshalYAMLRoundTrip(t *testing.T) {
	cat := DefaultCatalog()
	data, err := MarshalYAML(cat)
	require.NoError(t, err)
	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, cat, back)
}
