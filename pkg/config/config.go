// Package config handles loading and saving nv configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/nv/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceConfig holds default data source settings, overridable by flags.
type SourceConfig struct {
	URL  string `yaml:"url,omitempty"`  // Graph JSON endpoint
	File string `yaml:"file,omitempty"` // Local graph JSON file
	DB   string `yaml:"db,omitempty"`   // SQLite database path
}

// PhysicsConfig overrides the layout engine tuning. Zero values keep the
// built-in defaults.
type PhysicsConfig struct {
	LinkDistance   float64 `yaml:"link_distance,omitempty"`
	Repulsion      float64 `yaml:"repulsion,omitempty"`
	CenterStrength float64 `yaml:"center_strength,omitempty"`
	VelocityDecay  float64 `yaml:"velocity_decay,omitempty"`
}

// ExportConfig holds snapshot export defaults.
type ExportConfig struct {
	Dir    string `yaml:"dir,omitempty"`    // Default output directory
	Format string `yaml:"format,omitempty"` // "svg" or "png"
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
}

// Config is the top-level configuration for nv.
type Config struct {
	Source  SourceConfig  `yaml:"source,omitempty"`
	Physics PhysicsConfig `yaml:"physics,omitempty"`
	Export  ExportConfig  `yaml:"export,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Export: ExportConfig{
			Format: "svg",
			Width:  1280,
			Height: 800,
		},
	}
}

// ConfigDir returns the XDG config directory for nv.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "nv")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "nv")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Source.File = expandHome(cfg.Source.File)
	cfg.Source.DB = expandHome(cfg.Source.DB)
	cfg.Export.Dir = expandHome(cfg.Export.Dir)

	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
