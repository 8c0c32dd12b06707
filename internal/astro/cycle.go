// Package astro derives day/night cycles from a geographic location.
//
// A Cycle is one full day/night period bounded by two consecutive
// sunrise-equivalent instants. Inside polar circles the sun can stay above or
// below the horizon for months; following the linear-clock convention, those
// cycles are bounded at the instants the sun is closest to the horizon
// (approximated by solar midnight during polar day and solar noon during
// polar night), so the progress bar keeps advancing normally while the sunset
// marker drifts toward an edge and vanishes.
package astro

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/mosbasik/linearclock/internal/errors"
)

// Cycle is an immutable day/night period.
// Start is inclusive, End exclusive, and End is always after Start.
// Sunset, when present, lies strictly between them. Visible is only
// meaningful when Sunset is absent: true means the whole cycle is daylight
// (polar day), false means polar night.
type Cycle struct {
	Start   time.Time
	End     time.Time
	Sunset  *time.Time
	Visible bool
}

// Key is a comparable value identity for a Cycle, usable as a map key.
type Key struct {
	Start     int64
	End       int64
	Sunset    int64
	HasSunset bool
	Visible   bool
}

// Key returns the cycle's value identity. Two cycles meaning the same period
// produce equal keys regardless of time.Location or monotonic clock readings.
func (c Cycle) Key() Key {
	k := Key{
		Start:   c.Start.UnixNano(),
		End:     c.End.UnixNano(),
		Visible: c.Visible,
	}
	if c.Sunset != nil {
		k.Sunset = c.Sunset.UnixNano()
		k.HasSunset = true
	}
	return k
}

// Contains reports whether t falls within [Start, End).
func (c Cycle) Contains(t time.Time) bool {
	return !t.Before(c.Start) && t.Before(c.End)
}

// Duration returns End - Start.
func (c Cycle) Duration() time.Duration {
	return c.End.Sub(c.Start)
}

// New validates and constructs a Cycle.
func New(start, end time.Time, sunset *time.Time, visible bool) (Cycle, error) {
	if !end.After(start) {
		return Cycle{}, errors.New(errors.ErrAstro,
			fmt.Sprintf("Cycle end %s must be after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
			"")
	}
	if sunset != nil && (!sunset.After(start) || !sunset.Before(end)) {
		return Cycle{}, errors.New(errors.ErrAstro,
			fmt.Sprintf("Sunset %s must lie strictly between cycle bounds", sunset.Format(time.RFC3339)),
			"")
	}
	return Cycle{Start: start, End: end, Sunset: sunset, Visible: visible}, nil
}

// CycleSpanning returns the Cycle containing now for the given location.
// Times in the returned cycle carry now's Location.
func CycleSpanning(now time.Time, lat, lon float64) (Cycle, error) {
	loc := now.Location()

	// Collect sunrises in a window around now. Two days either side is
	// enough: the cycle containing now starts at most ~25h before it.
	var rises []time.Time
	for off := -2; off <= 2; off++ {
		if r, ok := sunriseOn(now.AddDate(0, 0, off), lat, lon, loc); ok {
			rises = append(rises, r)
		}
	}
	sort.Slice(rises, func(i, j int) bool { return rises[i].Before(rises[j]) })

	var start, end time.Time
	for _, r := range rises {
		if !r.After(now) {
			start = r
		} else if end.IsZero() {
			end = r
		}
	}

	// Polar edge cases: one or both bounds fall inside a period with no
	// sunrise at all, so substitute the closest-approach boundary.
	if start.IsZero() {
		start = polarBoundaryBefore(now, lat, lon, loc)
	}
	if end.IsZero() {
		end = polarBoundaryAfter(start, lat, lon, loc)
	}
	if !end.After(start) {
		return Cycle{}, errors.New(errors.ErrAstro,
			fmt.Sprintf("Derived an empty cycle at %s", now.Format(time.RFC3339)),
			"Check latitude and longitude in your config")
	}

	// Find the sunset inside (start, end), if there is one.
	var sunsetAt *time.Time
	for off := 0; off <= 1 && sunsetAt == nil; off++ {
		if s, ok := sunsetOn(start.AddDate(0, 0, off), lat, lon, loc); ok {
			if s.After(start) && s.Before(end) {
				s := s
				sunsetAt = &s
			}
		}
	}

	// Visible only matters without a sunset; the sun is up all cycle when
	// the local hemisphere is tilted sunward.
	visible := solarDeclination(now) > 0 == (lat > 0)

	return New(start, end, sunsetAt, visible)
}

// sunriseOn returns the sunrise on d's calendar date, or false when the sun
// never rises that day.
func sunriseOn(d time.Time, lat, lon float64, loc *time.Location) (time.Time, bool) {
	y, m, day := d.Date()
	rise, _ := sunrise.SunriseSunset(lat, lon, y, m, day)
	if rise.IsZero() {
		return time.Time{}, false
	}
	return rise.In(loc), true
}

// sunsetOn returns the sunset on d's calendar date, or false when the sun
// never sets that day.
func sunsetOn(d time.Time, lat, lon float64, loc *time.Location) (time.Time, bool) {
	y, m, day := d.Date()
	_, set := sunrise.SunriseSunset(lat, lon, y, m, day)
	if set.IsZero() {
		return time.Time{}, false
	}
	return set.In(loc), true
}

// solarNoon approximates the instant the sun is highest on d's calendar
// date: 12:00 UTC shifted four minutes per degree of longitude.
func solarNoon(d time.Time, lon float64, loc *time.Location) time.Time {
	y, m, day := d.Date()
	noon := time.Date(y, m, day, 12, 0, 0, 0, time.UTC)
	return noon.Add(-time.Duration(lon * 4 * float64(time.Minute))).In(loc)
}

// polarBoundary returns the closest-approach instant on d's date: solar
// midnight during polar day (the darkest moment) and solar noon during polar
// night (the brightest).
func polarBoundary(d time.Time, lat, lon float64, loc *time.Location) time.Time {
	b := solarNoon(d, lon, loc)
	if solarDeclination(d) > 0 == (lat > 0) {
		b = b.Add(-12 * time.Hour)
	}
	return b
}

// polarBoundaryBefore returns the latest boundary at or before now.
func polarBoundaryBefore(now time.Time, lat, lon float64, loc *time.Location) time.Time {
	var best time.Time
	for off := -1; off <= 1; off++ {
		b := polarBoundary(now.AddDate(0, 0, off), lat, lon, loc)
		if !b.After(now) && b.After(best) {
			best = b
		}
	}
	return best
}

// polarBoundaryAfter returns the earliest boundary strictly after start.
func polarBoundaryAfter(start time.Time, lat, lon float64, loc *time.Location) time.Time {
	for off := 0; off <= 2; off++ {
		b := polarBoundary(start.AddDate(0, 0, off), lat, lon, loc)
		if b.After(start) {
			return b
		}
	}
	return time.Time{}
}

// solarDeclination approximates the sun's declination in degrees on t's date.
func solarDeclination(t time.Time) float64 {
	n := float64(t.YearDay())
	return -23.44 * math.Cos(2*math.Pi/365*(n+10))
}
