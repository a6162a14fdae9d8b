package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray .env is read.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		inTempDir(t)

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, int64(1000), cfg.Maze.TurnPenalty)
		assert.Equal(t, int64(1), cfg.Maze.StepCost)
		assert.Equal(t, MethodTrace, cfg.Maze.Method)
		assert.Equal(t, 20, cfg.Race.Duration)
		assert.Equal(t, 100, cfg.Race.Threshold)
		assert.Equal(t, 0, cfg.Memory.Size)
		assert.Equal(t, 1024, cfg.Memory.Bytes)
	})

	t.Run("toml_file", func(t *testing.T) {
		dir := inTempDir(t)
		path := filepath.Join(dir, "gridpath.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[maze]
turn_penalty = 10
method = "filter"

[race]
duration = 2
`), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, int64(10), cfg.Maze.TurnPenalty)
		assert.Equal(t, MethodFilter, cfg.Maze.Method)
		assert.Equal(t, 2, cfg.Race.Duration)
		// untouched keys keep their defaults
		assert.Equal(t, int64(1), cfg.Maze.StepCost)
		assert.Equal(t, 100, cfg.Race.Threshold)
	})

	t.Run("yaml_file", func(t *testing.T) {
		dir := inTempDir(t)
		path := filepath.Join(dir, "gridpath.yml")
		require.NoError(t, os.WriteFile(path, []byte("memory:\n  size: 7\n  bytes: 12\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Memory.Size)
		assert.Equal(t, 12, cfg.Memory.Bytes)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := inTempDir(t)
		path := filepath.Join(dir, "gridpath.toml")
		require.NoError(t, os.WriteFile(path, []byte("[maze]\nturn_penalty = 10\n"), 0644))
		t.Setenv("GRIDPATH_MAZE__TURN_PENALTY", "5")

		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, int64(5), cfg.Maze.TurnPenalty)
	})

	t.Run("dotenv_file", func(t *testing.T) {
		dir := inTempDir(t)
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GRIDPATH_RACE__THRESHOLD=50\n"), 0644))
		t.Cleanup(func() { _ = os.Unsetenv("GRIDPATH_RACE__THRESHOLD") })

		cfg, err := Load("")
		require.NoError(t, err)

		assert.Equal(t, 50, cfg.Race.Threshold)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("unknown_extension", func(t *testing.T) {
		dir := inTempDir(t)
		path := filepath.Join(dir, "gridpath.ini")
		require.NoError(t, os.WriteFile(path, []byte("x=1\n"), 0644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("missing_file", func(t *testing.T) {
		dir := inTempDir(t)
		_, err := Load(filepath.Join(dir, "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("invalid_method", func(t *testing.T) {
		inTempDir(t)
		t.Setenv("GRIDPATH_MAZE__METHOD", "guess")

		_, err := Load("")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "maze.turn_penalty", envKey("GRIDPATH_MAZE__TURN_PENALTY"))
	assert.Equal(t, "memory.bytes", envKey("GRIDPATH_MEMORY__BYTES"))
}
