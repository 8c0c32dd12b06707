package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/mosbasik/linearclock/internal/errors"
)

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but lc only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest lc: https://github.com/mosbasik/linearclock/releases")
	}

	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Latitude %.4f is off the planet - it needs to be between -90 and 90", cfg.Latitude),
			"North is positive, south is negative. Run 'lc init' to set it interactively.")
	}

	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Longitude %.4f is off the planet - it needs to be between -180 and 180", cfg.Longitude),
			"East is positive, west is negative. Run 'lc init' to set it interactively.")
	}

	if cfg.Refresh < time.Second {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %v is too fast - the minimum is 1s", cfg.Refresh),
			"The bar only moves on the scale of minutes; try '1s' or '30s'.")
	}

	if cfg.Margin < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Margin can't be negative (got %d)", cfg.Margin),
			"Use 0 for a full-width bar.")
	}

	for _, l := range []struct {
		field string
		mode  LabelMode
	}{
		{"labels.rise", cfg.Labels.Rise},
		{"labels.set", cfg.Labels.Set},
		{"labels.next_rise", cfg.Labels.NextRise},
		{"labels.now", cfg.Labels.Now},
	} {
		if err := validateLabelMode(l.field, l.mode); err != nil {
			return err
		}
	}

	for _, g := range []struct {
		field string
		glyph string
	}{
		{"glyphs.filled", cfg.Glyphs.Filled},
		{"glyphs.empty", cfg.Glyphs.Empty},
		{"glyphs.begin", cfg.Glyphs.Begin},
		{"glyphs.end", cfg.Glyphs.End},
	} {
		if err := validateGlyph(g.field, g.glyph); err != nil {
			return err
		}
	}

	return nil
}

func validateLabelMode(field string, mode LabelMode) error {
	switch mode {
	case "", LabelTime, LabelShort, LabelLong, LabelNone:
		return nil
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("%s '%s' isn't valid - use 'time', 'short', 'long', or 'none'", field, mode),
		"Check the 'labels' section in your .lc.yaml.")
}

// validateGlyph allows empty (keep the default) or exactly one rune; anything
// wider would shear the bar's column math.
func validateGlyph(field, glyph string) error {
	if glyph == "" {
		return nil
	}
	if utf8.RuneCountInString(glyph) != 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%s '%s' needs to be a single character", field, glyph),
			"Each bar cell is exactly one column wide.")
	}
	return nil
}
