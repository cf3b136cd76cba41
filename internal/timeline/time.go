package timeline

import (
	"errors"
	"math"
	"time"
)

// YearLength is the average Gregorian year. All age arithmetic uses it;
// there is no calendar or leap-day awareness beyond this constant.
const YearLength = 31556952 * time.Second // 365.2425 days

// yearSeconds is YearLength in float seconds. Offsets are computed in
// seconds because time.Duration saturates at about 292 years.
const yearSeconds = float64(YearLength / time.Second)

// ErrEmptyWindow is returned by hosts that refuse a window whose death
// instant is not after its birth instant.
var ErrEmptyWindow = errors.New("death must be after birth")

// Window is the life span mapped onto the axis.
type Window struct {
	Birth time.Time
	Death time.Time
}

// SpanYears is the window length in average years.
func (w Window) SpanYears() float64 { return YearsBetween(w.Birth, w.Death) }

// Contains reports whether t lies within the window, bounds included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Birth) && !t.After(w.Death)
}

// Valid reports whether the window has a positive span.
func (w Window) Valid() bool { return w.Death.After(w.Birth) }

// ToInstant returns birth shifted by a fractional number of years.
func ToInstant(birth time.Time, ageYears float64) time.Time {
	secs := ageYears * yearSeconds
	whole := math.Floor(secs)
	nanos := math.Round((secs - whole) * 1e9)
	return time.Unix(birth.Unix()+int64(whole), int64(birth.Nanosecond())+int64(nanos)).In(birth.Location())
}

// YearsBetween returns b-a in average years, negative when b is before a.
func YearsBetween(a, b time.Time) float64 {
	secs := float64(b.Unix()-a.Unix()) + float64(b.Nanosecond()-a.Nanosecond())/1e9
	return secs / yearSeconds
}

// ProjectToAxis maps t to a model pixel on an axis of axisWidth pixels
// with padding on both ends. The window span must be positive.
func ProjectToAxis(t time.Time, w Window, padding, axisWidth float64) float64 {
	return padding + (axisWidth-2*padding)*YearsBetween(w.Birth, t)/w.SpanYears()
}

// AgeAt is the age in years at t, for display.
func AgeAt(birth, t time.Time) float64 { return YearsBetween(birth, t) }

// FormatDate renders an instant the way the date list and tooltips show it.
func FormatDate(t time.Time) string { return t.Format("Jan 2, 2006") }
