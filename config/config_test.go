package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeyian/wallpaper/tile"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "awe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "interactive-wallpapers", filepath.Base(cfg.ProjectsDir))
	assert.Equal(t, tile.DefaultConfig(), cfg.TileConfig())
	assert.Equal(t, color.NRGBA{R: 0xe1, G: 0x3b, B: 0x3e, A: 0xff}, cfg.PlaceholderColor())

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadFile(t *testing.T) {
	path := writeYAML(t, `
projects_dir: /srv/walls
log_level: debug
theme:
  padding: 0
  hex:
    radius: 8
    palette: ["#ff0000", "#00ff00", "#0000ff"]
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/walls", cfg.ProjectsDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Zero(t, cfg.Theme.Padding)
	assert.Equal(t, "#1e1e1e", cfg.Theme.Background, "unset keys keep defaults")
	assert.Equal(t, "#232323", cfg.Theme.Hex.Base)

	tc := cfg.TileConfig()
	assert.Equal(t, 8.0, tc.Radius)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, tc.Palette[0])
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, tc.Palette[2])
	assert.Len(t, cfg.RenderOptions(), 3)
	assert.Len(t, cfg.StoreOptions(), 1)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeYAML(t, "theme: [unclosed"))
	assert.Error(t, err)

	cfg, err := LoadFile(writeYAML(t, "theme:\n  hex:\n    radius: -1\n"))
	require.NoError(t, err)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestLoadEnvironment(t *testing.T) {
	path := writeYAML(t, "projects_dir: /from/file\nlog_level: warn\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvProjectsDir, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.ProjectsDir)
	assert.Equal(t, "warn", cfg.LogLevel)

	t.Setenv(EnvProjectsDir, "/from/env")
	t.Setenv(EnvLogLevel, "error")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.ProjectsDir)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadEnvironmentOverridesBadFileValue(t *testing.T) {
	path := writeYAML(t, "log_level: verbose\n")
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvProjectsDir, "")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv(EnvLogLevel, "")
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadExplicitPathWins(t *testing.T) {
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	t.Setenv(EnvProjectsDir, "")
	t.Setenv(EnvLogLevel, "")

	path := writeYAML(t, "projects_dir: /explicit\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/explicit", cfg.ProjectsDir)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvProjectsDir, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsBadEnvLevel(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvLogLevel, "loud")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "walls"), expandHome("~/walls"))
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, "/abs", expandHome("/abs"))
	assert.Equal(t, "~user/x", expandHome("~user/x"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty projects dir", func(c *Config) { c.ProjectsDir = " " }},
		{"unknown level", func(c *Config) { c.LogLevel = "chatty" }},
		{"negative padding", func(c *Config) { c.Theme.Padding = -1 }},
		{"zero radius", func(c *Config) { c.Theme.Hex.Radius = 0 }},
		{"two colors", func(c *Config) { c.Theme.Hex.Palette = c.Theme.Hex.Palette[:2] }},
		{"bad palette color", func(c *Config) { c.Theme.Hex.Palette = []string{"#000", "#111", "nope"} }},
		{"bad background", func(c *Config) { c.Theme.Background = "#12345" }},
		{"bad placeholder", func(c *Config) { c.Theme.Placeholder = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestLevelNames(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg := DefaultConfig()
		cfg.LogLevel = name
		got, err := cfg.Level()
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}
