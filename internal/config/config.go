// Package config loads the optional .tpt.yaml settings file. Defaults
// come first; a config file overrides only the keys it sets. A missing
// or unreadable file is never an error; the tool must start with
// defaults alone.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultBackend = "textfsm"
	DefaultTheme   = "default"
)

// DefaultTextExtensions lists the file suffixes shown in the browser
// pane. Template suffixes are always included regardless of this list.
var DefaultTextExtensions = []string{
	".txt", ".log", ".cfg", ".conf", ".csv", ".json", ".yaml", ".yml",
	".xml", ".textfsm", ".template", ".ttp", ".tpl", ".md", ".ini", ".toml",
}

// Config holds tool settings.
type Config struct {
	Backend        string   `yaml:"backend"`
	Theme          string   `yaml:"theme"`
	TextExtensions []string `yaml:"text_extensions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend:        DefaultBackend,
		Theme:          DefaultTheme,
		TextExtensions: append([]string(nil), DefaultTextExtensions...),
	}
}

// Load reads .tpt.yaml from dir, merged over defaults. Unset keys keep
// their default; a missing or malformed file yields pure defaults.
func Load(dir string) *Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ".tpt.yaml"))
	if err != nil {
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg
	}

	if fileCfg.Backend != "" {
		cfg.Backend = fileCfg.Backend
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	if len(fileCfg.TextExtensions) > 0 {
		cfg.TextExtensions = fileCfg.TextExtensions
	}
	return cfg
}

// ShowsFile reports whether the browser pane should list name. The
// extension match is case-insensitive.
func (c *Config) ShowsFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.TextExtensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
