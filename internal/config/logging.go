package config

import (
	"github.com/rshade/gridkit/internal/logging"
)

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ForInteractive is ToLoggingConfig for sessions that own the terminal: logs
// go to the configured file, else to fallback, else nowhere.
func (lc *LoggingConfig) ForInteractive(fallback string) logging.Config {
	out := *lc
	if out.File == "" {
		out.File = fallback
	}
	cfg := out.ToLoggingConfig()
	if cfg.File == "" {
		cfg.Output = logging.OutputNone
	}
	return cfg
}
