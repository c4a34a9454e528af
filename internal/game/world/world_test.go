package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/woodland/internal/controls"
	"github.com/Faultbox/woodland/internal/engine/camera"
	"github.com/Faultbox/woodland/internal/game/forest"
	"github.com/Faultbox/woodland/internal/game/vehicle"
	"github.com/Faultbox/woodland/pkg/math"
)

func testWorld(t *testing.T) *World {
	t.Helper()
	return New(Config{
		Camera:  camera.DefaultConfig(),
		Vehicle: vehicle.DefaultLimits(),
		Forest:  forest.Params{Grid: forest.Square(10), Chance: 0.5, MaxHeight: 20},
		Seed:    7,
		Width:   640,
		Height:  480,
	}, nil)
}

func TestNewGeneratesSeededForest(t *testing.T) {
	a := testWorld(t)
	b := testWorld(t)
	require.NotEmpty(t, a.Trees)
	assert.Equal(t, a.Trees, b.Trees)
}

func TestQuitAction(t *testing.T) {
	w := testWorld(t)
	assert.False(t, w.Quitting())

	w.HandleKey(controls.Quit, true)

	assert.True(t, w.Quitting())
}

func TestCycleCameraOnPressOnly(t *testing.T) {
	w := testWorld(t)

	w.HandleKey(controls.CycleCamera, true)
	w.HandleKey(controls.CycleCamera, false)
	assert.Equal(t, camera.FreeFly, w.Camera.Mode())

	w.HandleKey(controls.CycleCamera, true)
	w.HandleKey(controls.CycleCamera, true)
	assert.Equal(t, camera.FirstPerson, w.Camera.Mode())
}

func TestHeldForwardDrivesCar(t *testing.T) {
	w := testWorld(t)
	w.HandleKey(controls.Forward, true)

	for i := 0; i < 4; i++ {
		w.Update()
	}
	w.HandleKey(controls.Forward, false)
	w.Update()

	// Starting heading is -π/2: forward runs along -X.
	assert.InDelta(t, -2, w.Car.Pose.X, 1e-4)
	assert.InDelta(t, 0, w.Car.Pose.Z, 1e-4)
	assert.Equal(t, math.Vec3{X: w.Car.Pose.X, Z: w.Car.Pose.Z}, w.Target())
}

func TestTurnInFirstPersonTurnsCamera(t *testing.T) {
	w := testWorld(t)
	azimuth := w.Camera.Azimuth()
	heading := w.Car.Pose.Heading

	w.HandleKey(controls.TurnRight, true)
	w.Update()

	assert.InDelta(t, heading-0.05, w.Car.Pose.Heading, 1e-6)
	assert.InDelta(t, azimuth+0.05, w.Camera.Azimuth(), 1e-6)
}

func TestTurnOutsideFirstPersonLeavesCamera(t *testing.T) {
	w := testWorld(t)
	w.HandleKey(controls.CycleCamera, true) // free-fly
	azimuth := w.Camera.Azimuth()

	w.HandleKey(controls.TurnLeft, true)
	w.Update()

	assert.Equal(t, azimuth, w.Camera.Azimuth())
}

func TestThrustMovesFreeFlyCamera(t *testing.T) {
	w := testWorld(t)
	w.HandleKey(controls.CycleCamera, true) // free-fly
	start := w.Camera.Position()

	w.HandleKey(controls.Thrust, true)
	w.Update()

	assert.NotEqual(t, start, w.Camera.Position())
}

func TestDragNeedsButtonAndPreviousPosition(t *testing.T) {
	w := testWorld(t)
	azimuth := w.Camera.Azimuth()

	w.HandleMouseMove(100, 100)
	assert.Equal(t, azimuth, w.Camera.Azimuth(), "no button")

	w.HandleMouseButton(true, true)
	w.HandleMouseMove(100, 100)
	assert.Equal(t, azimuth, w.Camera.Azimuth(), "first sample only records")

	w.HandleMouseMove(120, 100)
	assert.InDelta(t, azimuth+20*0.005, w.Camera.Azimuth(), 1e-5)

	w.HandleMouseMove(700, 100) // outside the window
	w.HandleMouseButton(true, false)
	w.HandleMouseButton(true, true)
	w.HandleMouseMove(300, 100)
	assert.InDelta(t, azimuth+20*0.005, w.Camera.Azimuth(), 1e-5, "release resets the anchor")
}

func TestZoomDragChangesRadius(t *testing.T) {
	w := testWorld(t)
	radius := w.Camera.Radius()

	w.HandleKey(controls.Zoom, true)
	w.HandleMouseButton(true, true)
	w.HandleMouseMove(100, 100)
	w.HandleMouseMove(100, 140)

	assert.InDelta(t, radius+40*0.05, w.Camera.Radius(), 1e-4)
}

func TestFigureHero(t *testing.T) {
	w := testWorld(t)
	w.Hero = HeroFigure
	x := w.Car.Pose.X

	w.HandleKey(controls.Forward, true)
	w.Update()
	w.HandleKey(controls.ToggleFigure, true)

	assert.Equal(t, x, w.Car.Pose.X, "drive keys only move the car hero")
	assert.Equal(t, w.Figure.Position, w.Target())
	assert.True(t, w.Figure.Raised)
}

func TestParseHero(t *testing.T) {
	h, ok := ParseHero("figure")
	assert.True(t, ok)
	assert.Equal(t, HeroFigure, h)

	_, ok = ParseHero("plane")
	assert.False(t, ok)
}
