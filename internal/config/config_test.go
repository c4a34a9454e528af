package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test graphics defaults
	if cfg.Graphics.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 480 {
		t.Errorf("expected height 480, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected fov 45, got %v", cfg.Graphics.FOV)
	}
	if cfg.Graphics.Far != 10000 {
		t.Errorf("expected far 10000, got %v", cfg.Graphics.Far)
	}

	// Test scene defaults
	if cfg.Scene.Profile != ProfileForest {
		t.Errorf("expected profile %q, got %q", ProfileForest, cfg.Scene.Profile)
	}
	if cfg.Scene.GridMin != -50 || cfg.Scene.GridMax != 50 {
		t.Errorf("expected grid [-50,50), got [%d,%d)", cfg.Scene.GridMin, cfg.Scene.GridMax)
	}
	if cfg.Scene.TreeChance != 0.05 {
		t.Errorf("expected tree chance 0.05, got %v", cfg.Scene.TreeChance)
	}
	if cfg.Scene.Seed != 0 {
		t.Errorf("expected clock seed 0, got %d", cfg.Scene.Seed)
	}

	// Test vehicle defaults
	if cfg.Vehicle.Bound != 50 {
		t.Errorf("expected bound 50, got %v", cfg.Vehicle.Bound)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestBuildFromYAML(t *testing.T) {
	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  far: 500

scene:
  seed: 42
  hero: figure

controls:
  forward: [Up]

logging:
  level: "debug"
  log_file: "woodland.log"
`

	cfg, err := build([]byte(yamlContent), "")
	if err != nil {
		t.Fatalf("failed to build config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.Far != 500 {
		t.Errorf("expected far 500, got %v", cfg.Graphics.Far)
	}
	if cfg.Scene.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Scene.Seed)
	}
	if cfg.Scene.Hero != "figure" {
		t.Errorf("expected hero figure, got %q", cfg.Scene.Hero)
	}
	if cfg.Logging.LogFile != "woodland.log" {
		t.Errorf("expected log file woodland.log, got %s", cfg.Logging.LogFile)
	}

	// Partial controls keep the other defaults.
	if got := cfg.Controls["forward"]; len(got) != 1 || got[0] != "Up" {
		t.Errorf("expected forward [Up], got %v", got)
	}
	if got := cfg.Controls["quit"]; len(got) == 0 {
		t.Error("expected default quit binding to survive")
	}

	// Unset values keep defaults
	if cfg.Graphics.FOV != 45 {
		t.Errorf("expected default fov 45, got %v", cfg.Graphics.FOV)
	}
}

func TestBuildEmpty(t *testing.T) {
	cfg, err := build(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scene.Profile != ProfileForest {
		t.Errorf("expected profile forest, got %q", cfg.Scene.Profile)
	}
}

func TestBuildInvalidYAML(t *testing.T) {
	if _, err := build([]byte("graphics: [not, a, map"), ""); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestProfiles(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		flag      string
		wantFar   float32
		wantBound float32
		wantGrid  [2]int
	}{
		{"default forest", "", "", 10000, 50, [2]int{-50, 50}},
		{"grove from flag", "", ProfileGrove, 1000, 40, [2]int{-40, 40}},
		{"grove from file", "scene:\n  profile: grove\n", "", 1000, 40, [2]int{-40, 40}},
		{"flag beats file", "scene:\n  profile: grove\n", ProfileForest, 10000, 50, [2]int{-50, 50}},
		{"file value beats profile", "graphics:\n  far: 300\n", ProfileGrove, 300, 40, [2]int{-40, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := build([]byte(tt.yaml), tt.flag)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if cfg.Graphics.Far != tt.wantFar {
				t.Errorf("far = %v, want %v", cfg.Graphics.Far, tt.wantFar)
			}
			if cfg.Vehicle.Bound != tt.wantBound {
				t.Errorf("bound = %v, want %v", cfg.Vehicle.Bound, tt.wantBound)
			}
			if got := [2]int{cfg.Scene.GridMin, cfg.Scene.GridMax}; got != tt.wantGrid {
				t.Errorf("grid = %v, want %v", got, tt.wantGrid)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}
}

func TestUnknownProfileFailsValidation(t *testing.T) {
	cfg, err := build(nil, "jungle")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	err = cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	for _, name := range Profiles() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q should list profile %q", err, name)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }},
		{"far before near", func(c *Config) { c.Graphics.Far = c.Graphics.Near / 2 }},
		{"fov", func(c *Config) { c.Graphics.FOV = 180 }},
		{"chance above one", func(c *Config) { c.Scene.TreeChance = 1.5 }},
		{"empty grid", func(c *Config) { c.Scene.GridMin = c.Scene.GridMax }},
		{"hero", func(c *Config) { c.Scene.Hero = "boat" }},
		{"bound", func(c *Config) { c.Vehicle.Bound = 0 }},
		{"radius", func(c *Config) { c.Camera.Radius = 1000 }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"format", func(c *Config) { c.Capture.Format = "gif" }},
		{"control action", func(c *Config) { c.Controls["jump"] = []string{"J"} }},
		{"control conflict", func(c *Config) { c.Controls["thrust"] = []string{"W"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 800
	cfg.Scene.Seed = 7
	cfg.DryRunFrames = 3

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}

	loaded, err := build(data, "")
	if err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Graphics.Width != 800 {
		t.Errorf("expected width 800, got %d", loaded.Graphics.Width)
	}
	if loaded.Scene.Seed != 7 {
		t.Errorf("expected seed 7, got %d", loaded.Scene.Seed)
	}
	if loaded.DryRunFrames != 0 {
		t.Errorf("dry-run frames should not be persisted, got %d", loaded.DryRunFrames)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved file is not YAML: %v", err)
	}
	for _, key := range []string{"graphics", "scene", "vehicle", "camera", "controls", "logging", "capture"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("saved config missing section %q", key)
		}
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	if got := findConfigFile(); got != "" {
		t.Errorf("expected no config file, got %s", got)
	}

	if err := os.WriteFile("config.yaml", []byte("scene:\n  seed: 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := findConfigFile(); got != "./config.yaml" {
		t.Errorf("expected ./config.yaml, got %s", got)
	}
}
