// Package config loads the head unit's device configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds device settings read once at startup. Zero values fall
// back to built-in defaults.
type Config struct {
	Locale          string       `toml:"locale"`           // Target UI locale (e.g. "fr")
	TranslationsDir string       `toml:"translations_dir"` // Message catalog search directory
	CertBundle      string       `toml:"cert_bundle"`      // CA bundle path override
	LogPath         string       `toml:"log_path"`
	LogLevel        string       `toml:"log_level"`
	Window          WindowConfig `toml:"window"`
}

// WindowConfig selects window flags for the top-level window.
type WindowConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Borderless bool `toml:"borderless"`
	Resizable  bool `toml:"resizable"`
}

// Load parses the TOML config at path. A missing file is not an
// error and yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}
