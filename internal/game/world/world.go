// Package world holds the mutable application state: camera, heroes, the
// generated forest and the input tables. Everything runs on the main loop.
package world

import (
	"go.uber.org/zap"

	"github.com/Faultbox/woodland/internal/controls"
	"github.com/Faultbox/woodland/internal/engine/camera"
	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/internal/game/figure"
	"github.com/Faultbox/woodland/internal/game/forest"
	"github.com/Faultbox/woodland/internal/game/vehicle"
	"github.com/Faultbox/woodland/pkg/math"
)

// Hero selects which model the camera follows and the drive keys move.
type Hero int

const (
	HeroCar Hero = iota
	HeroFigure
)

// ParseHero maps a config name to a Hero.
func ParseHero(name string) (Hero, bool) {
	switch name {
	case "car", "":
		return HeroCar, true
	case "figure":
		return HeroFigure, true
	}
	return HeroCar, false
}

// noPosition marks the cursor as not yet seen since the button went down.
var noPosition = math.Vec2{X: -9999, Y: -9999}

// Config assembles a World.
type Config struct {
	Camera       camera.Config
	Vehicle      vehicle.Limits
	Forest       forest.Params
	Seed         int64
	Hero         Hero
	Width        int // window size in pixels, for cursor bounds
	Height       int
	FigureHandle render.Handle
}

// World is the explicit application state.
type World struct {
	Camera *camera.Camera
	Car    *vehicle.Car
	Figure *figure.Figure
	Trees  []forest.Tree
	Hero   Hero

	Keys       controls.Keys
	leftDown   bool
	lastCursor math.Vec2
	width      int
	height     int

	quit bool
	log  *zap.Logger
}

// New builds the world and generates the forest.
func New(cfg Config, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	w := &World{
		Camera:     camera.New(cfg.Camera),
		Car:        vehicle.New(cfg.Vehicle),
		Figure:     figure.New(cfg.FigureHandle),
		Trees:      forest.Generate(cfg.Forest, forest.NewSource(cfg.Seed)),
		Hero:       cfg.Hero,
		lastCursor: noPosition,
		width:      cfg.Width,
		height:     cfg.Height,
		log:        log,
	}

	stats := forest.Summarize(w.Trees)
	log.Info("forest generated",
		zap.Int("trees", stats.Trees),
		zap.Float32("tallest", stats.Tallest),
		zap.Int64("seed", cfg.Seed),
	)
	return w
}

// Quit asks the loop to stop after the current frame.
func (w *World) Quit() { w.quit = true }

// Quitting reports whether Quit was requested.
func (w *World) Quitting() bool { return w.quit }

// Resize updates the window bounds used for cursor filtering.
func (w *World) Resize(width, height int) {
	w.width, w.height = width, height
}

// Size returns the window size.
func (w *World) Size() (int, int) {
	return w.width, w.height
}

// Target returns the position the camera follows.
func (w *World) Target() math.Vec3 {
	if w.Hero == HeroFigure {
		return w.Figure.Position
	}
	return w.Car.Position()
}

// HandleKey records a key press or release. One-shot actions fire on press.
func (w *World) HandleKey(a controls.Action, pressed bool) {
	w.Keys.Set(a, pressed)
	if !pressed {
		return
	}

	switch a {
	case controls.Quit:
		w.Quit()
	case controls.CycleCamera:
		mode := w.Camera.CycleMode()
		w.log.Debug("camera mode", zap.Stringer("mode", mode))
	case controls.ToggleFigure:
		w.Figure.Toggle()
	}
}

// HandleMouseButton tracks the left button. Releasing it forgets the cursor
// so the next drag starts fresh.
func (w *World) HandleMouseButton(left, down bool) {
	if left && down {
		w.leftDown = true
		return
	}
	w.leftDown = false
	w.lastCursor = noPosition
}

// HandleMouseMove drags the camera while the left button is held. Positions
// outside the window are ignored.
func (w *World) HandleMouseMove(x, y float32) {
	if x <= 0 || x >= float32(w.width) || y <= 0 || y >= float32(w.height) {
		return
	}
	if !w.leftDown {
		return
	}
	pos := math.Vec2{X: x, Y: y}
	if w.lastCursor != noPosition {
		d := pos.Sub(w.lastCursor)
		w.Camera.Drag(d.X, d.Y, w.Keys.Held(controls.Zoom))
	}
	w.lastCursor = pos
}

// Update applies held keys once per frame.
func (w *World) Update() {
	firstPerson := w.Camera.Mode() == camera.FirstPerson
	turn := w.Car.Limits.TurnRate
	driving := w.Hero == HeroCar

	if w.Keys.Held(controls.TurnRight) {
		if driving {
			w.Car.TurnRight()
		}
		if firstPerson {
			w.Camera.Turn(turn)
		}
	}
	if w.Keys.Held(controls.TurnLeft) {
		if driving {
			w.Car.TurnLeft()
		}
		if firstPerson {
			w.Camera.Turn(-turn)
		}
	}
	if driving && w.Keys.Held(controls.Forward) {
		w.Car.Forward()
	}
	if driving && w.Keys.Held(controls.Back) {
		w.Car.Backward()
	}
	if w.Keys.Held(controls.Thrust) {
		w.Camera.Thrust(1)
	}
	if w.Keys.Held(controls.Reverse) {
		w.Camera.Thrust(-1)
	}
}

// Advance steps the animation accumulators after a frame is drawn.
func (w *World) Advance() {
	w.Car.Advance()
}
