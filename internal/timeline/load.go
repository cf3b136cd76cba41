package timeline

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadMilestone       = errors.New("invalid milestone")
	ErrUnsupportedCatalog = errors.New("unsupported catalog format")
)

// CatalogExts lists the file extensions LoadCatalog understands.
var CatalogExts = []string{".yaml", ".yml", ".json", ".csv"}

// IsCatalogFile reports whether path has a supported catalog extension.
func IsCatalogFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range CatalogExts {
		if e == ext {
			return true
		}
	}
	return false
}

// rawRange and rawMilestone are the on-disk shape shared by YAML and JSON.
type rawRange struct {
	StartAge float64 `yaml:"start_age" json:"start_age"`
	EndAge   float64 `yaml:"end_age" json:"end_age"`
}

type rawMilestone struct {
	Label      string    `yaml:"label" json:"label"`
	Age        *float64  `yaml:"age,omitempty" json:"age,omitempty"`
	Range      *rawRange `yaml:"range,omitempty" json:"range,omitempty"`
	Kind       string    `yaml:"kind" json:"kind"`
	Importance int       `yaml:"importance,omitempty" json:"importance,omitempty"`
	Note       string    `yaml:"note,omitempty" json:"note,omitempty"`
}

type rawCatalog struct {
	Milestones []rawMilestone `yaml:"milestones" json:"milestones"`
}

func (r rawMilestone) milestone() (Milestone, error) {
	label := strings.TrimSpace(r.Label)
	if label == "" {
		return Milestone{}, fmt.Errorf("%w: missing label", ErrBadMilestone)
	}
	kind, ok := ParseKind(r.Kind)
	if !ok {
		return Milestone{}, fmt.Errorf("%w: %q: kind %q is not bio or soc", ErrBadMilestone, label, r.Kind)
	}
	if r.Importance < 0 || r.Importance > 3 {
		return Milestone{}, fmt.Errorf("%w: %q: importance %d out of 1..3", ErrBadMilestone, label, r.Importance)
	}
	imp := Importance(r.Importance)
	switch {
	case r.Age != nil && r.Range != nil:
		return Milestone{}, fmt.Errorf("%w: %q: both age and range set", ErrBadMilestone, label)
	case r.Range != nil:
		return Between(label, r.Range.StartAge, r.Range.EndAge, kind, imp, r.Note), nil
	case r.Age != nil:
		return PointAt(label, *r.Age, kind, imp, r.Note), nil
	}
	return Milestone{}, fmt.Errorf("%w: %q: neither age nor range set", ErrBadMilestone, label)
}

func fromRaw(raw rawCatalog) ([]Milestone, error) {
	out := make([]Milestone, 0, len(raw.Milestones))
	for i, r := range raw.Milestones {
		m, err := r.milestone()
		if err != nil {
			return nil, fmt.Errorf("milestone %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, errors.New("catalog: no milestones")
	}
	return out, nil
}

// ParseYAML reads a catalog document of the form `milestones: [...]`.
func ParseYAML(data []byte) ([]Milestone, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml catalog: %w", err)
	}
	return fromRaw(raw)
}

// ParseJSON reads the JSON equivalent of ParseYAML. A bare array of
// milestones is accepted too.
func ParseJSON(data []byte) ([]Milestone, error) {
	var raw rawCatalog
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &raw.Milestones); err != nil {
			return nil, fmt.Errorf("json catalog: %w", err)
		}
		return fromRaw(raw)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json catalog: %w", err)
	}
	return fromRaw(raw)
}

// ParseCSV reads rows with a label,kind,importance,age,start_age,end_age,note
// header (column order free, names case-insensitive). Rows with an age are
// points; rows with start_age and end_age are intervals.
func ParseCSV(r io.Reader) ([]Milestone, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv catalog: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("csv catalog: empty")
	}
	cols := map[string]int{}
	for i, h := range recs[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["label"]; !ok {
		return nil, errors.New("csv catalog: label column not found")
	}
	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, name string) (*float64, error) {
		s := cell(row, name)
		if s == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%s %q: %w", name, s, err)
		}
		return &v, nil
	}
	var raw rawCatalog
	for n, row := range recs[1:] {
		rm := rawMilestone{Label: cell(row, "label"), Kind: cell(row, "kind"), Note: cell(row, "note")}
		if s := cell(row, "importance"); s != "" {
			imp, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("csv row %d: importance %q: %w", n+2, s, err)
			}
			rm.Importance = imp
		}
		age, err := num(row, "age")
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		start, err := num(row, "start_age")
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		end, err := num(row, "end_age")
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", n+2, err)
		}
		rm.Age = age
		if start != nil || end != nil {
			if start == nil || end == nil {
				return nil, fmt.Errorf("csv row %d: %w: start_age and end_age go together", n+2, ErrBadMilestone)
			}
			rm.Range = &rawRange{StartAge: *start, EndAge: *end}
		}
		raw.Milestones = append(raw.Milestones, rm)
	}
	return fromRaw(raw)
}

// LoadCatalog reads a milestone catalog, picking the parser by extension.
func LoadCatalog(path string) ([]Milestone, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !IsCatalogFile(path) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCatalog, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if ext == ".csv" {
		return ParseCSV(f)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if ext == ".json" {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}

// MarshalYAML renders defs back into the catalog document format, so the
// paste editor can be seeded with the current catalog.
func MarshalYAML(defs []Milestone) ([]byte, error) {
	raw := rawCatalog{Milestones: make([]rawMilestone, 0, len(defs))}
	for _, d := range defs {
		r := rawMilestone{Label: d.Label, Kind: d.Kind.String(), Importance: int(d.Importance), Note: d.Note}
		if d.IsInterval() {
			r.Range = &rawRange{StartAge: d.StartAge, EndAge: d.EndAge}
		} else {
			age := d.Age
			r.Age = &age
		}
		raw.Milestones = append(raw.Milestones, r)
	}
	return yaml.Marshal(raw)
}
