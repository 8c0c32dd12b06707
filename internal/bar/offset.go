package bar

import (
	"fmt"
	"math"
	"time"

	"github.com/mosbasik/linearclock/internal/errors"
)

// OffsetFromInstant returns the slot index whose time range contains t.
//
// An instant equal to the cycle's end is technically the first slot of the
// NEXT cycle, but it is still answered with length (one past the last slot)
// so callers can draw markers at the closing edge of this bar.
func OffsetFromInstant(b *Bar, t time.Time) (Offset, error) {
	if t.Equal(b.Cycle.End) {
		return Offset(len(b.Slots)), nil
	}

	for i, slot := range b.Slots {
		if slot.Contains(t) {
			return Offset(i), nil
		}
	}

	return 0, errors.New(errors.ErrRange,
		fmt.Sprintf("Instant %s is outside the bar's cycle [%s, %s]",
			t.Format(time.RFC3339),
			b.Cycle.Start.Format(time.RFC3339),
			b.Cycle.End.Format(time.RFC3339)),
		"Rebuild the cycle so it spans the instant before drawing")
}

// OffsetFromPercent returns the column offset for a percentage of the bar.
// percent is expected in [0, 100]; no clamping is performed, so out-of-range
// input yields an out-of-range offset.
func OffsetFromPercent(b *Bar, percent float64) Offset {
	charsPerPoint := float64(len(b.Slots)) / 100.0
	return Offset(roundHalfUp(percent * charsPerPoint))
}

// roundHalfUp rounds to the nearest integer with halves going up.
// The policy is isolated here on purpose: ceil, floor, and half-to-even are
// all still candidates, and changing it must not require touching callers.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
