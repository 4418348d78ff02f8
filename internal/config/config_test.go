package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "full", cfg.Viewport)
	require.Equal(t, 6, cfg.DayStartHour)
	require.Equal(t, 23, cfg.DayEndHour)
	require.NotEmpty(t, cfg.DataDir)

	// The file now exists and loads back equal.
	_, err = os.Stat(path)
	require.NoError(t, err)
	again, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, again)
}

func TestLoadNormalizesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewport: huge\nday_start_hour: 20\nday_end_hour: 7\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "full", cfg.Viewport)
	require.Equal(t, 6, cfg.DayStartHour)
	require.Equal(t, 23, cfg.DayEndHour)
	require.NotEmpty(t, cfg.DataDir)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewport: [unclosed"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{DataDir: "/tmp/hebdo-test", Viewport: "compact", DayStartHour: 8, DayEndHour: 20}

	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	require.Error(t, Save("", DefaultConfig()))
	require.Error(t, Save(filepath.Join(t.TempDir(), "c.yaml"), nil))
}
