package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridkit/internal/config"
)

// newTarget returns a Config whose values differ from the defaults so tests
// can tell replaced sections from untouched ones.
func newTarget() *config.Config {
	cfg := config.Default()
	cfg.Grid.Overscan = 9
	cfg.Grid.EstimatedRowHeight = 3
	cfg.Logging.Level = "debug"
	cfg.Logging.File = "/var/log/gridkit.log"
	cfg.Theme.Highlight = false
	return cfg
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SectionReplacement(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
grid:
  overscan: 2
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, 2, target.Grid.Overscan)
	assert.InDelta(t, config.DefaultEstimatedRowHeight, target.Grid.EstimatedRowHeight, 0,
		"fields missing from a replaced section take their defaults")
	assert.Equal(t, "debug", target.Logging.Level)
	assert.Equal(t, "/var/log/gridkit.log", target.Logging.File)
}

func TestShallowMergeYAML_MultipleSections(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
version: "1.2.0"
logging:
  level: warn
theme:
  detail_style: dracula
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "1.2.0", target.Version)
	assert.Equal(t, "warn", target.Logging.Level)
	assert.Empty(t, target.Logging.File)
	assert.Equal(t, "dracula", target.Theme.DetailStyle)
	assert.True(t, target.Theme.Highlight)
	assert.Equal(t, 9, target.Grid.Overscan)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, `
plugins:
  foo: bar
grid:
  frame_interval_ms: 33
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, 33, target.Grid.FrameIntervalMS)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := newTarget()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, newTarget(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target *config.Config
		path   func(t *testing.T) string
	}{
		{
			name:   "nil target",
			target: nil,
			path:   func(t *testing.T) string { return writeOverlay(t, "grid: {}\n") },
		},
		{
			name:   "missing file",
			target: config.Default(),
			path:   func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.yaml") },
		},
		{
			name:   "invalid yaml",
			target: config.Default(),
			path:   func(t *testing.T) string { return writeOverlay(t, "grid: [unclosed\n") },
		},
		{
			name:   "wrong section type",
			target: config.Default(),
			path:   func(t *testing.T) string { return writeOverlay(t, "grid:\n  overscan: lots\n") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, config.ShallowMergeYAML(tt.target, tt.path(t)))
		})
	}
}
