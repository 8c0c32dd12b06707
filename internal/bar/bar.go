// Package bar maps a day/night cycle onto a fixed-width character bar.
//
// A Bar partitions the continuous time range of an astro.Cycle into one
// half-open slot per terminal character. Everything in this package is a pure
// function of immutable inputs; Engine adds memoization on top because the
// same bars, offsets, and rendered strings are requested on every redraw.
package bar

import (
	"fmt"
	"time"

	"github.com/mosbasik/linearclock/internal/astro"
	"github.com/mosbasik/linearclock/internal/errors"
)

// Offset is a character-column coordinate within a Bar. The valid range is
// [0, length]: length itself is one past the last slot and means "exactly at
// cycle end", so callers can draw markers flush with the bar's closing cap.
type Offset int

// Slot is one half-open time sub-range [Lower, Upper) of a Bar,
// corresponding to a single character position.
type Slot struct {
	Lower time.Time
	Upper time.Time
}

// Contains reports whether t falls within [Lower, Upper).
func (s Slot) Contains(t time.Time) bool {
	return !t.Before(s.Lower) && t.Before(s.Upper)
}

// Bar defines the datetime meaning of each character in the clock bar during
// a specific cycle and for a specific length (number of characters).
// Never mutated after construction.
type Bar struct {
	Cycle        astro.Cycle
	Slots        []Slot
	SlotDuration time.Duration
}

// Length returns the number of character slots.
func (b *Bar) Length() int {
	return len(b.Slots)
}

// Build partitions cycle into length contiguous slots. Slot boundaries are
// computed with fractional division so a length that doesn't evenly divide
// the cycle duration still yields exactly length slots with no drift: slot i
// spans [start + i/length·d, start + (i+1)/length·d), and the final upper
// bound lands exactly on cycle.End. Identical inputs always produce
// bit-identical boundaries.
func Build(cycle astro.Cycle, length int) (*Bar, error) {
	if length < 1 {
		return nil, errors.New(errors.ErrArgument,
			fmt.Sprintf("Bar length must be at least 1, got %d", length),
			"Widen the terminal or reduce the margin")
	}

	total := float64(cycle.End.Sub(cycle.Start))
	bound := func(i int) time.Time {
		// The ratio is computed first so bound(length) is exactly 1.0 of
		// the total duration, closing the last slot on cycle.End.
		return cycle.Start.Add(time.Duration(float64(i) / float64(length) * total))
	}

	slots := make([]Slot, length)
	lower := cycle.Start
	for i := 0; i < length; i++ {
		upper := bound(i + 1)
		slots[i] = Slot{Lower: lower, Upper: upper}
		lower = upper
	}

	return &Bar{
		Cycle:        cycle,
		Slots:        slots,
		SlotDuration: time.Duration(total / float64(length)),
	}, nil
}
