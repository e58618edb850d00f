package model

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Add-on policies for the drag interaction.
const (
	AddOnHover = "hover"
	AddOnDrop  = "drop"
)

// Display themes.
const (
	ThemeDefault = "default"
	ThemeMono    = "mono"
)

// CatalogConfig points at the task catalog to load.
type CatalogConfig struct {
	// Path is a YAML or JSON catalog file. Empty selects the built-in catalog.
	Path string `mapstructure:"path" yaml:"path"`
}

// SessionConfig holds settings for the game session.
type SessionConfig struct {
	// DefaultTask is the task id activated on startup. Empty selects
	// the first task in the catalog.
	DefaultTask string `mapstructure:"default_task" yaml:"default_task"`
}

// InteractionConfig holds settings for drag and click handling.
type InteractionConfig struct {
	// AddOn is "hover" (add while dragging over the window) or "drop".
	AddOn string `mapstructure:"add_on" yaml:"add_on"`

	// Mouse enables mouse capture for drag and drop.
	Mouse bool `mapstructure:"mouse" yaml:"mouse"`
}

// DisplayConfig holds UI/rendering preferences.
type DisplayConfig struct {
	// Theme is "default" or "mono".
	Theme        string `mapstructure:"theme" yaml:"theme"`
	ShowContent  bool   `mapstructure:"show_content" yaml:"show_content"`
	PaletteWidth int    `mapstructure:"palette_width" yaml:"palette_width"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level application configuration.
type AppConfig struct {
	Catalog     CatalogConfig     `mapstructure:"catalog" yaml:"catalog"`
	Session     SessionConfig     `mapstructure:"session" yaml:"session"`
	Interaction InteractionConfig `mapstructure:"interaction" yaml:"interaction"`
	Display     DisplayConfig     `mapstructure:"display" yaml:"display"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/contextgame/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "contextgame", "config.yaml")
}

// DefaultAppConfig returns a sensible default configuration.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Interaction: InteractionConfig{
			AddOn: AddOnHover,
			Mouse: true,
		},
		Display: DisplayConfig{
			Theme:        ThemeDefault,
			ShowContent:  true,
			PaletteWidth: 40,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("interaction.add_on", AddOnHover)
	v.SetDefault("interaction.mouse", true)
	v.SetDefault("display.theme", ThemeDefault)
	v.SetDefault("display.show_content", true)
	v.SetDefault("display.palette_width", 40)
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return DefaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := DefaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks enumerated settings.
func (c *AppConfig) Validate() error {
	switch c.Interaction.AddOn {
	case AddOnHover, AddOnDrop:
	default:
		return fmt.Errorf("%w: interaction.add_on must be %q or %q, got %q",
			ErrInvalidConfig, AddOnHover, AddOnDrop, c.Interaction.AddOn)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log.level %q", ErrInvalidConfig, c.Log.Level)
	}

	switch c.Display.Theme {
	case ThemeDefault, ThemeMono:
	default:
		return fmt.Errorf("%w: display.theme must be %q or %q, got %q",
			ErrInvalidConfig, ThemeDefault, ThemeMono, c.Display.Theme)
	}

	if c.Display.PaletteWidth < 0 {
		return fmt.Errorf("%w: display.palette_width must not be negative", ErrInvalidConfig)
	}

	return nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("catalog", cfg.Catalog)
	v.Set("session", cfg.Session)
	v.Set("interaction", cfg.Interaction)
	v.Set("display", cfg.Display)
	v.Set("log", cfg.Log)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
