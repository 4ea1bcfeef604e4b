package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flarebyte/baldrick-timeteller/internal/paths"
	"gopkg.in/yaml.v3"
)

const (
	DefaultOutput = "default"
	DefaultColor  = "auto"
)

type ClockConfig struct {
	Zone   string `yaml:"zone"`   // default timezone name for now/timestamp
	Format string `yaml:"format"` // default strftime pattern for timestamp
}

type DurationConfig struct {
	Output string `yaml:"output"` // default|compact-days|compact-weeks|iso|total-seconds
	Color  string `yaml:"color"`  // auto|always|never
}

type Config struct {
	Clock    ClockConfig    `yaml:"clock"`
	Duration DurationConfig `yaml:"duration"`
}

func defaults() Config {
	return Config{
		Duration: DurationConfig{Output: DefaultOutput, Color: DefaultColor},
	}
}

// Path returns the expected path to the config.yaml file.
func Path() string {
	return filepath.Join(paths.Home(), "config.yaml")
}

// Load reads configuration from config.yaml if it exists.
// Missing file is not an error; defaults are returned.
func Load() (Config, error) {
	cfg := defaults()
	p := Path()
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(b, &fileCfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Merge: override defaults with provided values if non-zero
	if fileCfg.Clock.Zone != "" {
		cfg.Clock.Zone = fileCfg.Clock.Zone
	}
	if fileCfg.Clock.Format != "" {
		cfg.Clock.Format = fileCfg.Clock.Format
	}
	if fileCfg.Duration.Output != "" {
		cfg.Duration.Output = fileCfg.Duration.Output
	}
	if fileCfg.Duration.Color != "" {
		cfg.Duration.Color = fileCfg.Duration.Color
	}
	return cfg, nil
}
