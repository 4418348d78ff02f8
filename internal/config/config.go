// Package config provides the YAML application configuration with
// first-run creation and atomic saves.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// DataDir is where planner state (activities, backgrounds) lives.
	DataDir string `yaml:"data_dir"`

	// Viewport selects the layout scale: "full" or "compact".
	Viewport string `yaml:"viewport"`

	// DayStartHour and DayEndHour bound the visible hour window,
	// inclusive on both ends (e.g. 6 through 23).
	DayStartHour int `yaml:"day_start_hour"`
	DayEndHour   int `yaml:"day_end_hour"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		DataDir:      defaultDataDir(),
		Viewport:     "full",
		DayStartHour: 6,
		DayEndHour:   23,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".hebdo"
	}
	return filepath.Join(home, ".hebdo")
}

// DefaultPath returns the standard config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(defaultDataDir(), "config.yaml")
	}
	return filepath.Join(dir, "hebdo", "config.yaml")
}

// Normalize fills missing/zero values with defaults so partially-filled
// configs still behave correctly.
func (c *Config) Normalize() {
	if c.DataDir == "" {
		c.DataDir = defaultDataDir()
	}
	switch c.Viewport {
	case "full", "compact":
	default:
		c.Viewport = "full"
	}
	if c.DayStartHour < 0 || c.DayStartHour > 23 {
		c.DayStartHour = 6
	}
	if c.DayEndHour < 0 || c.DayEndHour > 23 {
		c.DayEndHour = 23
	}
	if c.DayEndHour <= c.DayStartHour {
		c.DayStartHour, c.DayEndHour = 6, 23
	}
}

// Load loads configuration from the given YAML path.
//
// Behavior:
//   - If the file does not exist, a default config is written there
//     (creating the parent directory) and returned.
//   - If the file exists, it is unmarshalled and normalized.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically: temp file in the same
// directory, then rename, final permissions 0600.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".hebdo-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
