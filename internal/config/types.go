package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// LabelMode controls how a bar annotation is rendered.
type LabelMode string

const (
	// LabelTime renders the event's clock time, like "06:42".
	LabelTime LabelMode = "time"
	// LabelShort renders an abbreviated name, like "rise".
	LabelShort LabelMode = "short"
	// LabelLong renders the full name, like "sunrise".
	LabelLong LabelMode = "long"
	// LabelNone hides the annotation.
	LabelNone LabelMode = "none"
)

// Config represents the complete .lc.yaml configuration file.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Latitude and Longitude locate the observer for sunrise/sunset math.
	// Positive latitude is north, positive longitude is east.
	Latitude  float64 `yaml:"latitude" mapstructure:"latitude"`
	Longitude float64 `yaml:"longitude" mapstructure:"longitude"`

	// Refresh is how often the clock redraws.
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`

	// Margin is the number of blank columns kept on each side of the bar.
	Margin int `yaml:"margin" mapstructure:"margin"`

	Labels LabelConfig `yaml:"labels" mapstructure:"labels"`
	Glyphs GlyphConfig `yaml:"glyphs" mapstructure:"glyphs"`
}

// LabelConfig picks a LabelMode per bar annotation.
type LabelConfig struct {
	// Rise labels the start-of-cycle sunrise (or the polar boundary).
	Rise LabelMode `yaml:"rise" mapstructure:"rise"`

	// Set labels the sunset, when the cycle has one.
	Set LabelMode `yaml:"set" mapstructure:"set"`

	// NextRise labels the end-of-cycle sunrise.
	NextRise LabelMode `yaml:"next_rise" mapstructure:"next_rise"`

	// Now labels the current time, embedded in the bar itself.
	Now LabelMode `yaml:"now" mapstructure:"now"`
}

// GlyphConfig overrides the characters the bar is drawn with. Empty fields
// keep the built-in glyphs; overrides must be a single rune wide.
type GlyphConfig struct {
	Filled string `yaml:"filled" mapstructure:"filled"`
	Empty  string `yaml:"empty" mapstructure:"empty"`
	Begin  string `yaml:"begin" mapstructure:"begin"`
	End    string `yaml:"end" mapstructure:"end"`
}

// DefaultConfig returns a Config with sensible defaults. The zero location
// (null island) is deliberate: it renders a plausible equatorial cycle until
// 'lc init' records real coordinates.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Refresh: time.Second,
		Margin:  2,
		Labels: LabelConfig{
			Rise:     LabelTime,
			Set:      LabelTime,
			NextRise: LabelTime,
			Now:      LabelTime,
		},
	}
}
