// Package config loads the application configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppConfig defines the global stager configuration options.
type AppConfig struct {
	Theme       string `yaml:"theme"`        // "dark" or "light"
	AutoRefresh bool   `yaml:"auto_refresh"` // watch the repo and refresh the list
	Remote      string `yaml:"remote"`       // default remote for push review
	LogCount    int    `yaml:"log_count"`    // commits shown in the log view
	ShowIcons   bool   `yaml:"show_icons"`   // Nerd Font icons in the file list
	DebugLog    string `yaml:"debug_log"`    // path of the debug log file, empty disables
}

// Default returns the default configuration values.
func Default() *AppConfig {
	return &AppConfig{
		Theme:       "dark",
		AutoRefresh: true,
		Remote:      "origin",
		LogCount:    20,
		ShowIcons:   false,
	}
}

// Path returns the config file location under the user config dir.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "stager", "config.yaml"), nil
}

// Load reads the config file at path, applying defaults for missing keys.
// A missing file is not an error; a malformed one is.
func Load(path string) (*AppConfig, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// LoadDefault loads from the standard location.
func LoadDefault() (*AppConfig, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

func (c *AppConfig) normalize() {
	if c.Theme != "light" {
		c.Theme = "dark"
	}
	if c.LogCount <= 0 {
		c.LogCount = 20
	}
	if c.Remote == "" {
		c.Remote = "origin"
	}
}
