// Package config loads editor settings from an optional YAML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the YAML file, a .env file
// in the working directory, then the process environment. Only
// AWE_PROJECTS_DIR and AWE_LOG_LEVEL are read from the environment;
// AWE_CONFIG names the YAML file when no path is given explicitly.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/aeyian/wallpaper"
	wpcolor "github.com/aeyian/wallpaper/internal/color"
	"github.com/aeyian/wallpaper/project"
	"github.com/aeyian/wallpaper/render"
	"github.com/aeyian/wallpaper/tile"
)

// Environment variables.
const (
	EnvProjectsDir = "AWE_PROJECTS_DIR"
	EnvLogLevel    = "AWE_LOG_LEVEL"
	EnvConfig      = "AWE_CONFIG"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the editor settings.
type Config struct {
	ProjectsDir string `yaml:"projects_dir"`
	LogLevel    string `yaml:"log_level"`
	Theme       Theme  `yaml:"theme"`
}

// Theme holds the colors and geometry of the canvas view.
type Theme struct {
	Background  string  `yaml:"background"`
	Padding     float64 `yaml:"padding"`
	Hex         Hex     `yaml:"hex"`
	Placeholder string  `yaml:"placeholder"`
}

// Hex configures the tile pattern behind the canvas.
type Hex struct {
	Radius  float64  `yaml:"radius"`
	Base    string   `yaml:"base"`
	Palette []string `yaml:"palette"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	root, err := project.DefaultRoot()
	if err != nil {
		root = filepath.Join(".", "interactive-wallpapers")
	}
	return &Config{
		ProjectsDir: root,
		LogLevel:    "info",
		Theme: Theme{
			Background: "#1e1e1e",
			Padding:    render.DefaultPadding,
			Hex: Hex{
				Radius:  12,
				Base:    "#232323",
				Palette: []string{"#3a3a3a", "#2e2e2e", "#232323"},
			},
			Placeholder: "#e13b3e",
		},
	}
}

// LoadFile reads a YAML file over the defaults. It neither consults the
// environment nor validates; Load does both.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the user
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.ProjectsDir = expandHome(cfg.ProjectsDir)
	return cfg, nil
}

// Load builds the effective configuration. path may be empty, in which
// case AWE_CONFIG is consulted; with neither, only defaults and the
// environment apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.ProjectsDir = expandHome(getEnv(EnvProjectsDir, cfg.ProjectsDir))
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	wallpaper.Logger().Debug("config: loaded", "file", path, "projects_dir", cfg.ProjectsDir)
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ProjectsDir) == "" {
		return fmt.Errorf("%w: projects_dir is required", ErrInvalid)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	t := c.Theme
	if t.Padding < 0 {
		return fmt.Errorf("%w: theme.padding must be >= 0", ErrInvalid)
	}
	if t.Hex.Radius <= 0 {
		return fmt.Errorf("%w: theme.hex.radius must be > 0", ErrInvalid)
	}
	if len(t.Hex.Palette) != 3 {
		return fmt.Errorf("%w: theme.hex.palette needs exactly 3 colors, got %d", ErrInvalid, len(t.Hex.Palette))
	}
	colors := map[string]string{
		"theme.background":  t.Background,
		"theme.placeholder": t.Placeholder,
		"theme.hex.base":    t.Hex.Base,
	}
	for i, p := range t.Hex.Palette {
		colors[fmt.Sprintf("theme.hex.palette[%d]", i)] = p
	}
	for field, v := range colors {
		if _, err := wpcolor.ParseHex(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, field, err)
		}
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// TileConfig returns the tile pattern settings. Call Validate first; bad
// colors fall back to the defaults.
func (c *Config) TileConfig() tile.Config {
	def := tile.DefaultConfig()
	out := tile.Config{
		Radius: c.Theme.Hex.Radius,
		Base:   wpcolor.Hex(c.Theme.Hex.Base, def.Base),
	}
	for i := range out.Palette {
		out.Palette[i] = def.Palette[i]
		if i < len(c.Theme.Hex.Palette) {
			out.Palette[i] = wpcolor.Hex(c.Theme.Hex.Palette[i], def.Palette[i])
		}
	}
	return out
}

// RenderOptions returns the compositor options for the theme.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithPadding(c.Theme.Padding),
		render.WithBackground(wpcolor.Hex(c.Theme.Background, render.DefaultBackground)),
		render.WithTileConfig(c.TileConfig()),
	}
}

// PlaceholderColor returns the preview fill for new projects.
func (c *Config) PlaceholderColor() color.NRGBA {
	return wpcolor.Hex(c.Theme.Placeholder, project.PlaceholderColor)
}

// StoreOptions returns the project store options for the theme.
func (c *Config) StoreOptions() []project.StoreOption {
	return []project.StoreOption{
		project.WithPlaceholderColor(c.PlaceholderColor()),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
