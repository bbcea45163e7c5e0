package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/gridkit/internal/config"
	"github.com/rshade/gridkit/internal/logging"
	"github.com/rshade/gridkit/internal/tui"
)

// setupLogging configures logging from the loaded config and the CLI flags,
// and stores the logger and a trace id in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}
	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		loggingCfg.File = logFile
	}

	interactive := wantsTerminal(cmd)
	var result logging.LogPathResult
	if interactive {
		fallback, err := config.DefaultLogFile()
		if err != nil {
			fallback = ""
		}
		result = logging.NewLoggerWithPath(loggingCfg.ForInteractive(fallback))
		if result.FallbackUsed {
			// stderr belongs to the grid; drop logs rather than corrupt it.
			result.Logger = zerolog.Nop()
		}
	} else {
		result = logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile && !interactive:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed && !interactive:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	traced := logger.With().Str("trace_id", traceID).Logger()
	ctx = traced.WithContext(ctx)
	cmd.SetContext(ctx)

	traced.Info().Str("command", cmd.Name()).Bool("interactive", interactive).Msg("command started")
	return result
}

// wantsTerminal reports whether cmd is about to run the full-screen grid.
func wantsTerminal(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationInteractive] != "true" {
		return false
	}
	plain, _ := cmd.Flags().GetBool("plain")
	return tui.DetectOutputMode(false, false, plain) == tui.OutputModeInteractive
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
