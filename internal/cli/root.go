package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mosbasik/linearclock/internal/bar"
	"github.com/mosbasik/linearclock/internal/clock"
	"github.com/mosbasik/linearclock/internal/config"
	"github.com/mosbasik/linearclock/internal/errors"
	"github.com/mosbasik/linearclock/internal/logger"
	"github.com/mosbasik/linearclock/internal/ui"
)

// Persistent flags
var (
	configFlag  string
	noColorFlag bool
)

// rootCmd runs the fullscreen clock when invoked with no subcommand.
var rootCmd = &cobra.Command{
	Use:   "lc",
	Short: "A linear clock for your terminal",
	Long: `lc draws the day as a horizontal bar: each cell is a fixed slice of the
current sunrise-to-sunrise cycle, colored by solar phase and filled as time
passes. The current time rides inside the bar; sunrise and sunset are
annotated above it, with a percentage scale underneath.

Run with no arguments for the fullscreen clock. Press q to quit.

Examples:
  lc
  lc show
  lc simulate --step 5m
  lc init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runClock(cfg, clock.SystemTime{}, 0)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	cobra.OnInitialize(func() {
		logger.ConfigureDestination()
		ui.ConfigureColorProfile(noColorFlag || os.Getenv("NO_COLOR") != "")
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig finds, loads, and validates the effective configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newEngine builds the render engine with the config's glyph overrides.
func newEngine(cfg *config.Config) *bar.Engine {
	return bar.NewEngine(ui.Palette(), ui.Glyphs(cfg.Glyphs.Filled, cfg.Glyphs.Empty))
}

// runClock starts the fullscreen clock on the given time source. A positive
// refresh overrides the config interval.
func runClock(cfg *config.Config, source clock.TimeSource, refresh time.Duration) error {
	m := clock.NewModel(cfg, newEngine(cfg), source, refresh)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "Clock exited unexpectedly")
	}
	return nil
}
