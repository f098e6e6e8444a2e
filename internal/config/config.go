package config

import (
	"os"
	"path/filepath"
	"strings"

	"imgvault/internal/errors"
	"imgvault/pkg/types"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It holds the GUI debug switch, localization language, and the file-type
// and directory settings consumed by the dialog helpers.
type Config struct {
	Settings struct {
		Debug    bool   `yaml:"debug"`    // Force non-native dialogs, enable debug logging
		Language string `yaml:"language"` // UI language code (en, fr, ...)
	} `yaml:"settings"`
	Images struct {
		Extensions []string `yaml:"extensions"` // Accepted image extensions, lowercase, no dot
	} `yaml:"images"`
	Icons struct {
		Dir string `yaml:"dir"` // Directory containing the .png icon files
	} `yaml:"icons"`
	Directories struct {
		Default string `yaml:"default"` // Starting directory for file choosers
	} `yaml:"directories"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

// NewTestConfig returns a configuration suitable for headless test runs:
// debug mode is on so choosers never reach for a native dialog.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Settings.Debug = true
	return cfg
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.Language = "en"
	cfg.Images.Extensions = append([]string(nil), types.DefaultImageExtensions...)
	cfg.Icons.Dir = "icons"
	cfg.Directories.Default = "."
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/imgvault/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "imgvault", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, errors.Wrap(err, "error reading config file")
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, errors.Wrap(err, "error parsing config file")
	}

	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.Language != "" {
		cfg.Settings.Language = tempCfg.Settings.Language
	}
	if len(tempCfg.Images.Extensions) > 0 {
		cfg.Images.Extensions = normalizeExtensions(tempCfg.Images.Extensions)
	}
	if tempCfg.Icons.Dir != "" {
		cfg.Icons.Dir = tempCfg.Icons.Dir
	}
	if tempCfg.Directories.Default != "" {
		cfg.Directories.Default = tempCfg.Directories.Default
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "error encoding config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "error creating config directory")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the configuration for values the GUI helpers cannot work
// with.
func (c *Config) Validate() error {
	if len(c.Images.Extensions) == 0 {
		return errors.NewWithKind("image extension list is empty", errors.InvalidConfig, nil)
	}
	for _, ext := range c.Images.Extensions {
		if ext == "" {
			return errors.NewWithKind("empty image extension", errors.InvalidConfig, nil)
		}
	}
	if c.Settings.Language == "" {
		return errors.NewWithKind("language is empty", errors.InvalidConfig, nil)
	}
	return nil
}

// normalizeExtensions lowercases extensions and strips leading dots so the
// whitelist always compares cleanly against filepath.Ext results.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			out = append(out, ext)
		}
	}
	return out
}
