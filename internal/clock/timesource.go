package clock

import "time"

// TimeSource supplies the current instant to the clock. The real clock uses
// SystemTime; simulation and tests substitute their own.
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock.
type SystemTime struct{}

func (SystemTime) Now() time.Time {
	return time.Now()
}

// Simulated is a time source that advances artificially on every read,
// wrapping back to start when it reaches stop. Useful for watching a whole
// day pass in a few seconds.
type Simulated struct {
	start time.Time
	stop  time.Time
	step  time.Duration
	cur   time.Time
}

// NewSimulated builds a simulated source covering [start, stop), advancing
// by step per read. A non-positive step defaults to one minute; a stop at or
// before start defaults to 24 hours after start.
func NewSimulated(start, stop time.Time, step time.Duration) *Simulated {
	if step <= 0 {
		step = time.Minute
	}
	if !stop.After(start) {
		stop = start.Add(24 * time.Hour)
	}
	return &Simulated{start: start, stop: stop, step: step, cur: start}
}

// Now returns the current simulated instant and advances the clock. The
// instant before wrapping is stop-aligned, never past it.
func (s *Simulated) Now() time.Time {
	now := s.cur
	s.cur = s.cur.Add(s.step)
	if !s.cur.Before(s.stop) {
		s.cur = s.start
	}
	return now
}
