package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mosbasik/linearclock/internal/errors"
)

// fileConfig mirrors Config for serialization, with the refresh interval as
// a duration string ("30s") instead of raw nanoseconds.
type fileConfig struct {
	Version   int         `yaml:"version"`
	Latitude  float64     `yaml:"latitude"`
	Longitude float64     `yaml:"longitude"`
	Refresh   string      `yaml:"refresh"`
	Margin    int         `yaml:"margin"`
	Labels    LabelConfig `yaml:"labels"`
	Glyphs    GlyphConfig `yaml:"glyphs,omitempty"`
}

// Save validates cfg and writes it to path as YAML. Used by 'lc init'.
func Save(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(fileConfig{
		Version:   cfg.Version,
		Latitude:  cfg.Latitude,
		Longitude: cfg.Longitude,
		Refresh:   cfg.Refresh.String(),
		Margin:    cfg.Margin,
		Labels:    cfg.Labels,
		Glyphs:    cfg.Glyphs,
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInternal,
			"Failed to serialize config",
			"This is a bug - please report it.")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot create config directory: "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot write config file: "+path,
			"Check file permissions")
	}

	return nil
}

// DefaultPath is where 'lc init' writes by default: .lc.yaml in the current
// directory.
func DefaultPath() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}
	return filepath.Join(cwd, ConfigFileName), nil
}
