// Package setup turns the loaded config into the component configs the game
// is assembled from, and runs frames headless for -dry-run.
package setup

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/woodland/internal/config"
	"github.com/Faultbox/woodland/internal/controls"
	"github.com/Faultbox/woodland/internal/engine/camera"
	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/internal/game/forest"
	"github.com/Faultbox/woodland/internal/game/scene"
	"github.com/Faultbox/woodland/internal/game/vehicle"
	"github.com/Faultbox/woodland/internal/game/world"
)

// Handles are the uploaded meshes the scene refers to.
type Handles struct {
	Ground   render.Handle
	Triangle render.Handle
	Bounds   render.Handle
}

// World builds the world config.
func World(cfg *config.Config, h Handles) (world.Config, error) {
	hero, ok := world.ParseHero(cfg.Scene.Hero)
	if !ok {
		return world.Config{}, fmt.Errorf("%w: hero %q", config.ErrInvalid, cfg.Scene.Hero)
	}

	cam := camera.DefaultConfig()
	cam.DragSensitivity = cfg.Camera.DragSensitivity
	cam.ZoomSensitivity = cfg.Camera.ZoomSensitivity
	cam.Speed = cfg.Camera.Speed
	cam.Radius = cfg.Camera.Radius
	cam.MinRadius = cfg.Camera.MinRadius
	cam.MaxRadius = cfg.Camera.MaxRadius
	cam.EyeHeight = cfg.Camera.EyeHeight

	return world.Config{
		Camera: cam,
		Vehicle: vehicle.Limits{
			Bound:    cfg.Vehicle.Bound,
			Step:     cfg.Vehicle.Step,
			TurnRate: cfg.Vehicle.TurnRate,
			SpinStep: cfg.Vehicle.SpinStep,
			BobStep:  cfg.Vehicle.BobStep,
		},
		Forest: forest.Params{
			Grid: forest.Grid{
				RowMin: cfg.Scene.GridMin,
				RowMax: cfg.Scene.GridMax,
				ColMin: cfg.Scene.GridMin,
				ColMax: cfg.Scene.GridMax,
			},
			Chance:    cfg.Scene.TreeChance,
			MaxHeight: cfg.Scene.MaxTreeHeight,
		},
		Seed:         cfg.Scene.Seed,
		Hero:         hero,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		FigureHandle: h.Triangle,
	}, nil
}

// Scene builds the composer config.
func Scene(cfg *config.Config, h Handles) scene.Config {
	return scene.Config{
		FOV:          cfg.Graphics.FOV,
		Near:         cfg.Graphics.Near,
		Far:          cfg.Graphics.Far,
		GroundExtent: cfg.Scene.GroundExtent,
		GroundHandle: h.Ground,
		ShowBounds:   cfg.Graphics.ShowBounds,
		BoundsHandle: h.Bounds,
	}
}

// Bindings builds the key table.
func Bindings(cfg *config.Config) (controls.Bindings, error) {
	b, err := controls.NewBindings(cfg.Controls)
	if err != nil {
		return nil, fmt.Errorf("%w: controls: %v", config.ErrInvalid, err)
	}
	return b, nil
}

// Summary reports what a headless run drew.
type Summary struct {
	Frames    int
	Trees     int
	DrawCalls int // in the last frame
}

// Headless runs frames against a recorder: update, compose, advance. It
// exercises everything but the window and GL.
func Headless(cfg *config.Config, frames int, log *zap.Logger) (Summary, error) {
	h := Handles{Ground: 1, Triangle: 2, Bounds: 3}
	wc, err := World(cfg, h)
	if err != nil {
		return Summary{}, err
	}
	w := world.New(wc, log)
	c := scene.NewComposer(Scene(cfg, h))
	rec := render.NewRecorder()

	sum := Summary{Trees: len(w.Trees)}
	for i := 0; i < frames && !w.Quitting(); i++ {
		rec.Reset()
		w.Update()
		if err := c.Frame(rec, w); err != nil {
			return sum, fmt.Errorf("frame %d: %w", i, err)
		}
		w.Advance()
		sum.Frames++
		sum.DrawCalls = len(rec.Calls)
	}

	log.Info("headless run finished",
		zap.Int("frames", sum.Frames),
		zap.Int("trees", sum.Trees),
		zap.Int("draw_calls", sum.DrawCalls),
	)
	return sum, nil
}
