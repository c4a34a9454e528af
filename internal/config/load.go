package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < profile < file < flags.
func Load() (*Config, error) {
	// Explicit path takes priority
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	var data []byte
	if configPath != "" {
		var err error
		if data, err = os.ReadFile(configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	cfg, err := build(data, ProfileName())
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// build layers the profile and the YAML document over the defaults. The
// profile comes from the flag when given, otherwise from the document.
func build(data []byte, profileFlag string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	name := profileFlag
	if name == "" {
		name = cfg.Scene.Profile
	}
	if name == ProfileForest {
		cfg.Scene.Profile = name
		return cfg, nil
	}

	// Re-apply the document so its explicit values win over the profile.
	cfg = Default()
	if !applyProfile(cfg, name) {
		cfg.Scene.Profile = name
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Scene.Profile = name
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Woodland")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Woodland")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "woodland")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "woodland")
	}
}
