package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mosbasik/linearclock/internal/astro"
	"github.com/mosbasik/linearclock/internal/clock"
)

// fallbackWidth is used when stdout is not a terminal and --width is unset.
const fallbackWidth = 80

var showWidthFlag int

// showCmd prints one frame of the clock and exits.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current bar once and exit",
	Long: `Render a single frame of the clock to stdout, without the fullscreen
event loop. Handy for piping into other tools, for shell prompts, or for
checking a config change without starting the clock.

Examples:
  lc show
  lc show --width 60
  lc show --no-color | cat -A`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		width := showWidthFlag
		if width <= 0 {
			width = terminalWidth()
		}

		now := time.Now()
		cycle, err := astro.CycleSpanning(now, cfg.Latitude, cfg.Longitude)
		if err != nil {
			return err
		}

		frame, err := clock.Frame(newEngine(cfg), cfg, cycle, now, width)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), frame)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVar(&showWidthFlag, "width", 0, "bar width in columns (default: terminal width)")
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}
