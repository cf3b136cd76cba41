package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"memento/internal/timeline"
)

// Mode picks how the death instant is derived.
type Mode string

const (
	ModeLifespan  Mode = "lifespan"
	ModeDeathDate Mode = "deathdate"
)

// Lifespan bounds, matching the lifespan slider.
const (
	MinLifespan = 30
	MaxLifespan = 120
)

// DateLayout is the on-disk and input date format.
const DateLayout = "2006-01-02"

// Date is a calendar day that reads and writes as YYYY-MM-DD.
type Date struct{ time.Time }

func (d Date) MarshalYAML() (any, error) { return d.Format(DateLayout), nil }

func (d *Date) UnmarshalYAML(n *yaml.Node) error {
	t, err := ParseDate(n.Value)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ParseDate parses YYYY-MM-DD as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

// Config is the host state the timeline is built from.
type Config struct {
	Birth    Date   `yaml:"birth"`
	Mode     Mode   `yaml:"mode"`
	Lifespan int    `yaml:"lifespan"`
	Death    Date   `yaml:"death"`
	ShowBio  bool   `yaml:"show_bio"`
	ShowSoc  bool   `yaml:"show_soc"`
	Catalog  string `yaml:"catalog"`
	Export   string `yaml:"export"`
}

// Default returns the starting configuration.
func Default() Config {
	return Config{
		Birth:    Date{time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC)},
		Mode:     ModeLifespan,
		Lifespan: 85,
		Death:    Date{time.Date(2080, time.January, 1, 0, 0, 0, 0, time.UTC)},
		ShowBio:  true,
		ShowSoc:  true,
		Export:   "timeline.svg",
	}
}

// Load overlays the YAML file at path on Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PathFromEnv returns MEMENTO_CONFIG, used when no path is given on the
// command line.
func PathFromEnv() string { return os.Getenv("MEMENTO_CONFIG") }

// ClampLifespan keeps years within the slider bounds.
func ClampLifespan(years int) int {
	if years < MinLifespan {
		return MinLifespan
	}
	if years > MaxLifespan {
		return MaxLifespan
	}
	return years
}

// Window derives the life window. Lifespan mode adds calendar years to
// the birth date.
func (c Config) Window() timeline.Window {
	w := timeline.Window{Birth: c.Birth.Time}
	if c.Mode == ModeDeathDate {
		w.Death = c.Death.Time
	} else {
		w.Death = c.Birth.AddDate(ClampLifespan(c.Lifespan), 0, 0)
	}
	return w
}

// Validate checks the mode and that the window has a positive span.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeLifespan, ModeDeathDate:
	default:
		return fmt.Errorf("config: mode %q: want %s or %s", c.Mode, ModeLifespan, ModeDeathDate)
	}
	if c.Birth.IsZero() {
		return errors.New("config: birth date missing")
	}
	if !c.Window().Valid() {
		return fmt.Errorf("config: %w", timeline.ErrEmptyWindow)
	}
	return nil
}

// LoadCatalog returns the unfiltered catalog named by the config, or the
// built-in one.
func (c Config) LoadCatalog() ([]timeline.Milestone, error) {
	if c.Catalog == "" {
		return timeline.DefaultCatalog(), nil
	}
	cat, err := timeline.LoadCatalog(c.Catalog)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.Catalog, err)
	}
	return cat, nil
}

// Milestones is LoadCatalog filtered by the bio/soc toggles.
func (c Config) Milestones() ([]timeline.Milestone, error) {
	cat, err := c.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return timeline.Filter(cat, c.ShowBio, c.ShowSoc), nil
}
