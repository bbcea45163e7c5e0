// Package config loads gridkit settings from defaults, the global config file,
// the project overlay and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the config schema version written by gridkit.
const CurrentVersion = "1.0.0"

// SupportedVersions is the range of config schema versions this build reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// Defaults.
const (
	DefaultOverscan           = 5
	DefaultEstimatedRowHeight = 1.0
	DefaultFrameIntervalMS    = 16
	DefaultColumnWidth        = 12.0
	DefaultDetailStyle        = "monokai"

	maxFrameIntervalMS = 1000
)

// Validation errors.
var (
	ErrInvalidVersion      = errors.New("invalid config version")
	ErrUnsupportedVersion  = errors.New("unsupported config version")
	ErrInvalidRowHeight    = errors.New("estimated row height must be positive")
	ErrInvalidFrameRate    = errors.New("frame interval out of range")
	ErrInvalidColumnWidth  = errors.New("column width must be positive")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrUnsupportedFileType = errors.New("unsupported config file type")
)

// Config is the gridkit configuration.
type Config struct {
	Version string        `yaml:"version" toml:"version"`
	Grid    GridConfig    `yaml:"grid"    toml:"grid"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
	Theme   ThemeConfig   `yaml:"theme"   toml:"theme"`
}

// GridConfig holds engine tuning.
type GridConfig struct {
	// Overscan is the number of rows mounted past each viewport edge. Zero
	// selects the engine default; negative disables overscan.
	Overscan int `yaml:"overscan" toml:"overscan"`

	// EstimatedRowHeight is the height, in lines, assumed for rows that
	// have not been rendered yet.
	EstimatedRowHeight float64 `yaml:"estimated_row_height" toml:"estimated_row_height"`

	// FrameIntervalMS is the frame budget used to coalesce recomputes.
	FrameIntervalMS int `yaml:"frame_interval_ms" toml:"frame_interval_ms"`

	// ColumnWidth is the minimum width of columns derived from data
	// without a schema.
	ColumnWidth float64 `yaml:"column_width" toml:"column_width"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file"   toml:"file"`
}

// ThemeConfig controls colors in the terminal view.
type ThemeConfig struct {
	// DetailStyle names the chroma style used for expanded rows.
	DetailStyle string `yaml:"detail_style" toml:"detail_style"`
	Highlight   bool   `yaml:"highlight"    toml:"highlight"`
	NoColor     bool   `yaml:"no_color"     toml:"no_color"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Grid:    defaultGrid(),
		Logging: defaultLogging(),
		Theme:   defaultTheme(),
	}
}

func defaultGrid() GridConfig {
	return GridConfig{
		Overscan:           DefaultOverscan,
		EstimatedRowHeight: DefaultEstimatedRowHeight,
		FrameIntervalMS:    DefaultFrameIntervalMS,
		ColumnWidth:        DefaultColumnWidth,
	}
}

func defaultLogging() LoggingConfig {
	return LoggingConfig{Level: "info", Format: "console"}
}

func defaultTheme() ThemeConfig {
	return ThemeConfig{DetailStyle: DefaultDetailStyle, Highlight: true}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}
	if c.Grid.EstimatedRowHeight <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRowHeight, c.Grid.EstimatedRowHeight)
	}
	if c.Grid.FrameIntervalMS < 1 || c.Grid.FrameIntervalMS > maxFrameIntervalMS {
		return fmt.Errorf("%w: %dms (want 1-%d)", ErrInvalidFrameRate, c.Grid.FrameIntervalMS, maxFrameIntervalMS)
	}
	if c.Grid.ColumnWidth <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidColumnWidth, c.Grid.ColumnWidth)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}
	return nil
}

// CheckVersion reports whether v is a config version this build can read.
// An empty version is treated as the current one.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidVersion, v, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported versions: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, ver, SupportedVersions)
	}
	return nil
}

// YAML renders the configuration as YAML.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return out, nil
}
