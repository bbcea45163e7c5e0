package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridkit/internal/config"
)

func TestResolveProjectDir_FlagOverride(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	flagDir := t.TempDir()

	got := config.ResolveProjectDir(context.Background(), flagDir, "/does/not/matter")

	assert.Equal(t, filepath.Join(flagDir, ".gridkit"), got)
	assert.True(t, filepath.IsAbs(got), "returned path must be absolute")
}

func TestResolveProjectDir_FlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), flagDir, "")

	assert.Equal(t, filepath.Join(flagDir, ".gridkit"), got)
}

func TestResolveProjectDir_EnvVarOverride(t *testing.T) {
	envDir := t.TempDir()
	t.Setenv(config.EnvProjectDir, envDir)

	got := config.ResolveProjectDir(context.Background(), "", "/does/not/matter")

	assert.Equal(t, filepath.Join(envDir, ".gridkit"), got)
}

func TestResolveProjectDir_WalkUp(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".gridkit"), 0755))
	sub := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(sub, 0755))

	got := config.ResolveProjectDir(context.Background(), "", sub)

	want, err := filepath.EvalSymlinks(filepath.Join(root, ".gridkit"))
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)
}

func TestResolveProjectDir_NoProject(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")

	assert.Empty(t, config.ResolveProjectDir(context.Background(), "", ""))
}

func TestResolveProjectDir_SuffixNotDuplicated(t *testing.T) {
	t.Setenv(config.EnvProjectDir, "")
	dir := filepath.Join(t.TempDir(), ".gridkit")

	got := config.ResolveProjectDir(context.Background(), dir, "")

	assert.Equal(t, dir, got)
}

func TestSetResolvedProjectDir_RoundTrip(t *testing.T) {
	t.Cleanup(func() { config.SetResolvedProjectDir("") })

	config.SetResolvedProjectDir("/tmp/project/.gridkit")
	assert.Equal(t, "/tmp/project/.gridkit", config.GetResolvedProjectDir())
}
