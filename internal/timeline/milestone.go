package timeline

import "strings"

// Kind separates biological from sociological milestones. Bio bands stack
// above the axis and soc bands below it.
type Kind int

const (
	Bio Kind = iota
	Soc
)

func (k Kind) String() string {
	if k == Soc {
		return "soc"
	}
	return "bio"
}

// Title is the long name used in tooltips and the date list.
func (k Kind) Title() string {
	if k == Soc {
		return "Sociological"
	}
	return "Biological"
}

// ParseKind accepts bio/soc and their long names, case-insensitive.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bio", "biological":
		return Bio, true
	case "soc", "sociological", "social":
		return Soc, true
	}
	return Bio, false
}

// Importance is 1 (minor), 2 (normal) or 3 (major). Zero means normal.
type Importance int

// Level returns the importance with the zero value mapped to 2.
func (i Importance) Level() int {
	if i < 1 || i > 3 {
		return 2
	}
	return int(i)
}

// Shape tags a milestone as a single age or an age range.
type Shape int

const (
	ShapePoint Shape = iota
	ShapeInterval
)

// Milestone is an age-relative event definition. Age is used for points,
// StartAge/EndAge for intervals. EndAge > StartAge is expected but not
// enforced; an inverted range still renders as a flipped band.
type Milestone struct {
	Label      string
	Shape      Shape
	Age        float64
	StartAge   float64
	EndAge     float64
	Kind       Kind
	Importance Importance
	Note       string
}

// PointAt builds a point milestone.
func PointAt(label string, age float64, kind Kind, imp Importance, note string) Milestone {
	return Milestone{Label: label, Shape: ShapePoint, Age: age, Kind: kind, Importance: imp, Note: note}
}

// Between builds an interval milestone.
func Between(label string, start, end float64, kind Kind, imp Importance, note string) Milestone {
	return Milestone{Label: label, Shape: ShapeInterval, StartAge: start, EndAge: end, Kind: kind, Importance: imp, Note: note}
}

// IsInterval reports whether m spans an age range.
func (m Milestone) IsInterval() bool { return m.Shape == ShapeInterval }

// Filter keeps the milestones whose kind is enabled, preserving order.
func Filter(defs []Milestone, showBio, showSoc bool) []Milestone {
	out := make([]Milestone, 0, len(defs))
	for _, d := range defs {
		if (d.Kind == Bio && showBio) || (d.Kind == Soc && showSoc) {
			out = append(out, d)
		}
	}
	return out
}
