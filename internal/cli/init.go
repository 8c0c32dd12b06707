package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mosbasik/linearclock/internal/config"
	"github.com/mosbasik/linearclock/internal/errors"
)

var initForce bool

// initCmd creates a new .lc.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .lc.yaml configuration",
	Long: `Initialize a new linear clock configuration file.

Creates a .lc.yaml in the current directory, prompting for your location
and the refresh interval. The location drives sunrise and sunset math;
find your coordinates on any map service.

Examples:
  lc init
  lc init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config without asking")
}

func initCommand(force bool) error {
	path, err := config.DefaultPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	latStr := ""
	lonStr := ""
	refreshStr := cfg.Refresh.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Latitude").
				Description("Decimal degrees; north is positive").
				Placeholder("40.7128").
				Value(&latStr).
				Validate(validateCoordinate(-90, 90)),
			huh.NewInput().
				Title("Longitude").
				Description("Decimal degrees; east is positive").
				Placeholder("-74.0060").
				Value(&lonStr).
				Validate(validateCoordinate(-180, 180)),
			huh.NewInput().
				Title("Refresh interval").
				Description("How often the clock redraws").
				Placeholder("1s").
				Value(&refreshStr).
				Validate(validateRefresh),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Check terminal compatibility")
	}

	// The form validators have already vetted these.
	cfg.Latitude, _ = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	cfg.Longitude, _ = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	cfg.Refresh, _ = time.ParseDuration(strings.TrimSpace(refreshStr))

	if err := config.Save(cfg, path); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  lc           - run the clock")
	fmt.Println("  lc show      - print one frame")
	fmt.Println("  lc simulate  - watch a day pass in seconds")

	return nil
}

func validateCoordinate(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a decimal number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}

func validateRefresh(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a duration like 1s or 30s")
	}
	if d < time.Second {
		return fmt.Errorf("minimum refresh is 1s")
	}
	return nil
}
