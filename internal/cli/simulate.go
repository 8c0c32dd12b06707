package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mosbasik/linearclock/internal/clock"
	"github.com/mosbasik/linearclock/internal/errors"
)

var (
	simStartFlag string
	simStopFlag  string
	simStepFlag  time.Duration
	simDelayFlag time.Duration
)

// simulateCmd runs the clock on artificial time.
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the clock on artificial time",
	Long: `Run the fullscreen clock with time advancing artificially each frame,
wrapping back to the start when it reaches the stop time. Useful for
watching a whole day pass in a few seconds, or for checking what the bar
looks like at a particular hour.

Examples:
  lc simulate
  lc simulate --start 06:00 --stop 22:00
  lc simulate --step 5m --delay 100ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source, err := newSimulatedSource(time.Now(), simStartFlag, simStopFlag, simStepFlag)
		if err != nil {
			return err
		}

		return runClock(cfg, source, simDelayFlag)
	},
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simStartFlag, "start", "00:00", "simulated start time (HH:MM or RFC 3339)")
	simulateCmd.Flags().StringVar(&simStopFlag, "stop", "", "simulated stop time (default: 24h after start)")
	simulateCmd.Flags().DurationVar(&simStepFlag, "step", time.Minute, "simulated time advanced per frame")
	simulateCmd.Flags().DurationVar(&simDelayFlag, "delay", 50*time.Millisecond, "real time between frames")
}

// newSimulatedSource builds a simulated time source from the flag values,
// anchoring HH:MM times to ref's date and zone.
func newSimulatedSource(ref time.Time, startFlag, stopFlag string, step time.Duration) (*clock.Simulated, error) {
	start, err := parseClockTime(startFlag, ref)
	if err != nil {
		return nil, err
	}

	var stop time.Time
	if stopFlag != "" {
		stop, err = parseClockTime(stopFlag, ref)
		if err != nil {
			return nil, err
		}
	}

	return clock.NewSimulated(start, stop, step), nil
}

// parseClockTime accepts "15:04" (ref's date, local zone) or a full RFC 3339
// timestamp.
func parseClockTime(s string, ref time.Time) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, errors.WrapWithCode(err, errors.ErrArgument,
			fmt.Sprintf("'%s' doesn't look like a time", s),
			"Use HH:MM (today, local zone) or a full RFC 3339 timestamp.")
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), nil
}
