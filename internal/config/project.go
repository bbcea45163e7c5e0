package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/rshade/gridkit/internal/logging"
)

// ProjectDirName is the per-project settings directory.
const ProjectDirName = ".gridkit"

// EnvProjectDir overrides project directory discovery.
const EnvProjectDir = "GRIDKIT_PROJECT_DIR"

// resolvedProjectDir holds the resolved project directory path for use
// by other config functions during the lifetime of a CLI invocation.
var (
	resolvedProjectDir   string       //nolint:gochecknoglobals // Set once at startup, read by config loaders
	resolvedProjectDirMu sync.RWMutex //nolint:gochecknoglobals // Protects resolvedProjectDir
)

// SetResolvedProjectDir stores the resolved project directory for use by other config functions.
func SetResolvedProjectDir(dir string) {
	resolvedProjectDirMu.Lock()
	defer resolvedProjectDirMu.Unlock()
	resolvedProjectDir = dir
}

// GetResolvedProjectDir returns the stored resolved project directory.
func GetResolvedProjectDir() string {
	resolvedProjectDirMu.RLock()
	defer resolvedProjectDirMu.RUnlock()
	return resolvedProjectDir
}

// ResolveProjectDir determines the project-local .gridkit directory path.
// It checks (in order):
//  1. flagValue (--project-dir CLI flag)
//  2. GRIDKIT_PROJECT_DIR env var
//  3. the nearest ancestor of startDir containing a .gridkit directory
//
// Returns the absolute path to the .gridkit directory, or "" if no project
// is found. It never creates the directory.
func ResolveProjectDir(ctx context.Context, flagValue, startDir string) string {
	if flagValue != "" {
		return toAbsProjectDir(ctx, flagValue)
	}

	if envDir := os.Getenv(EnvProjectDir); envDir != "" {
		return toAbsProjectDir(ctx, envDir)
	}

	if startDir == "" {
		return ""
	}
	root, ok := findProjectRoot(startDir)
	if !ok {
		return ""
	}
	return toAbsProjectDir(ctx, root)
}

// findProjectRoot walks up from dir to the filesystem root looking for a
// directory that contains .gridkit.
func findProjectRoot(dir string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		info, statErr := os.Stat(filepath.Join(abs, ProjectDirName))
		if statErr == nil && info.IsDir() {
			return abs, true
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

// toAbsProjectDir converts dir to an absolute path and appends ".gridkit".
// If the path already ends with ".gridkit", it is returned as-is (after
// resolving to an absolute path) to prevent double-append.
func toAbsProjectDir(ctx context.Context, dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("dir", dir).
			Msg("failed to resolve absolute path for project directory")
		abs = dir
	}

	if filepath.Base(abs) == ProjectDirName {
		return abs
	}

	return filepath.Join(abs, ProjectDirName)
}
