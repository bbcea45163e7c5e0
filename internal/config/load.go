package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridkit/internal/logging"
)

// Environment overrides.
const (
	EnvLogLevel  = "GRIDKIT_LOG_LEVEL"
	EnvOverscan  = "GRIDKIT_OVERSCAN"
	EnvRowHeight = "GRIDKIT_ROW_HEIGHT"
)

// configFileNames are tried in order inside the config directory.
//
//nolint:gochecknoglobals // Lookup order for the global config file.
var configFileNames = []string{"config.yaml", "config.yml", "config.toml"}

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// Path is an explicit config file (--config). When empty the global
	// config directory is searched.
	Path string

	// ProjectDir is the project .gridkit directory whose config.yaml is
	// shallow-merged over the global settings.
	ProjectDir string
}

// Load builds the configuration from defaults, the global file, the project
// overlay and the environment, and validates the result. A missing global
// file is not an error; a missing explicit Path is.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		path = findGlobalConfig()
	}
	if path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if opts.ProjectDir != "" {
		overlay := filepath.Join(opts.ProjectDir, "config.yaml")
		if _, err := os.Stat(overlay); err == nil {
			if mergeErr := ShallowMergeYAML(cfg, overlay); mergeErr != nil {
				return nil, mergeErr
			}
		}
	}

	ApplyEnv(ctx, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// LoadFile decodes a YAML or TOML file over cfg. Keys absent from the file
// keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing YAML config %s: %w", path, err)
		}
	case ".toml":
		if _, err = toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parsing TOML config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}
	return nil
}

// ApplyEnv applies environment overrides. Unparseable values are logged and
// ignored.
func ApplyEnv(ctx context.Context, cfg *Config) {
	logger := logging.FromContext(ctx)

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvOverscan); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			logger.Warn().Str("component", "config").Str("env", EnvOverscan).Str("value", v).
				Msg("ignoring non-integer overscan")
		} else {
			cfg.Grid.Overscan = n
		}
	}
	if v := os.Getenv(EnvRowHeight); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil || h <= 0 {
			logger.Warn().Str("component", "config").Str("env", EnvRowHeight).Str("value", v).
				Msg("ignoring invalid row height")
		} else {
			cfg.Grid.EstimatedRowHeight = h
		}
	}
}

// findGlobalConfig returns the first config file present in the config
// directory, or "" when there is none.
func findGlobalConfig() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, statErr := os.Stat(path); statErr == nil {
			return path
		} else if !errors.Is(statErr, fs.ErrNotExist) {
			return path
		}
	}
	return ""
}
