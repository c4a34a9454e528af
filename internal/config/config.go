// Package config handles scene configuration loading and management.
package config

import "github.com/Faultbox/woodland/internal/controls"

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig      `yaml:"graphics"`
	Scene    SceneConfig         `yaml:"scene"`
	Vehicle  VehicleConfig       `yaml:"vehicle"`
	Camera   CameraConfig        `yaml:"camera"`
	Controls map[string][]string `yaml:"controls"` // action name -> key names
	Logging  LoggingConfig       `yaml:"logging"`
	Capture  CaptureConfig       `yaml:"capture"`

	// DryRunFrames renders that many frames into a recorder without opening
	// a window, then exits. Only settable from the command line.
	DryRunFrames int `yaml:"-"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	ShowBounds bool    `yaml:"show_bounds"` // wireframe boxes around trees and the car
}

// SceneConfig holds forest generation and hero settings.
type SceneConfig struct {
	Profile       string  `yaml:"profile"`
	Seed          int64   `yaml:"seed"` // 0 seeds from the clock
	GridMin       int     `yaml:"grid_min"`
	GridMax       int     `yaml:"grid_max"` // exclusive
	TreeChance    float32 `yaml:"tree_chance"`
	MaxTreeHeight float32 `yaml:"max_tree_height"`
	GroundExtent  float32 `yaml:"ground_extent"`
	Hero          string  `yaml:"hero"` // car or figure
}

// VehicleConfig holds car handling.
type VehicleConfig struct {
	Bound    float32 `yaml:"bound"`
	Step     float32 `yaml:"step"`
	TurnRate float32 `yaml:"turn_rate"`
	SpinStep float32 `yaml:"spin_step"`
	BobStep  float32 `yaml:"bob_step"`
}

// CameraConfig holds camera tuning.
type CameraConfig struct {
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	ZoomSensitivity float32 `yaml:"zoom_sensitivity"`
	Speed           float32 `yaml:"speed"`
	Radius          float32 `yaml:"radius"`
	MinRadius       float32 `yaml:"min_radius"`
	MaxRadius       float32 `yaml:"max_radius"`
	EyeHeight       float32 `yaml:"eye_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // png or bmp
}

// Default returns a Config with sensible default values.
func Default() *Config {
	cfg := &Config{
		Graphics: GraphicsConfig{
			Width:    640,
			Height:   480,
			VSync:    true,
			FPSLimit: 0,
			FOV:      45,
			Near:     0.001,
		},
		Scene: SceneConfig{
			Profile:       ProfileForest,
			TreeChance:    0.05,
			MaxTreeHeight: 20,
			GroundExtent:  55,
			Hero:          "car",
		},
		Vehicle: VehicleConfig{
			Step:     0.5,
			TurnRate: 0.05,
			SpinStep: 0.5,
			BobStep:  0.05,
		},
		Camera: CameraConfig{
			DragSensitivity: 0.005,
			ZoomSensitivity: 0.05,
			Speed:           0.25,
			Radius:          20,
			MinRadius:       2,
			MaxRadius:       200,
			EyeHeight:       6,
		},
		Controls: controls.DefaultKeyNames(),
		Logging: LoggingConfig{
			Level: "info",
		},
		Capture: CaptureConfig{
			Dir:    "screenshots",
			Format: "png",
		},
	}
	applyProfile(cfg, ProfileForest)
	return cfg
}
