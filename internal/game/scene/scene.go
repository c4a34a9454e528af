// Package scene composes one frame: projection, view, light, ground, forest
// and the followed hero, in that order.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/internal/game/forest"
	"github.com/Faultbox/woodland/internal/game/world"
	"github.com/Faultbox/woodland/pkg/math"
)

const (
	// GroundVertexCount is the number of vertices in the ground strip.
	GroundVertexCount = 4
	// BoundsVertexCount is the number of line vertices in a box outline.
	BoundsVertexCount = 24
)

var (
	// GroundColor is the grass tint.
	GroundColor = render.Color{R: 0.3, G: 0.8, B: 0.2}

	// BoundsColor tints the debug bounding boxes.
	BoundsColor = render.Color{R: 1, G: 0.9, B: 0.1}

	// Sun is the single directional light.
	Sun = render.Light{
		Direction: math.Vec3{X: -1, Y: -1, Z: -1},
		Color:     render.Color{R: 1, G: 1, B: 1},
	}
)

// Config contains composer options.
type Config struct {
	FOV          float32 // vertical field of view in degrees
	Near         float32
	Far          float32
	GroundExtent float32 // half-size of the ground quad
	GroundHandle render.Handle

	ShowBounds   bool // draw wireframe boxes around trees and the hero
	BoundsHandle render.Handle
}

// DefaultConfig returns the forest profile's projection.
func DefaultConfig() Config {
	return Config{
		FOV:          45,
		Near:         0.001,
		Far:          10000,
		GroundExtent: 55,
	}
}

// Composer walks the world into a render.Device once per frame.
type Composer struct {
	config Config
}

// NewComposer creates a composer.
func NewComposer(cfg Config) *Composer {
	return &Composer{config: cfg}
}

// Projection returns the perspective matrix for a viewport size.
func (c *Composer) Projection(width, height int) math.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return math.Perspective(c.config.FOV*math32.Pi/180, aspect, c.config.Near, c.config.Far)
}

// Frame issues every draw call for the current state. The device transform
// stack must be back at depth zero on return.
func (c *Composer) Frame(dev render.Device, w *world.World) error {
	width, height := w.Size()
	dev.SetProjectionMatrix(c.Projection(width, height))
	dev.SetViewMatrix(w.Camera.View(w.Target()))
	dev.SetLight(Sun)

	if err := c.drawGround(dev); err != nil {
		return fmt.Errorf("ground: %w", err)
	}
	for i, t := range w.Trees {
		if err := DrawTree(dev, t); err != nil {
			return fmt.Errorf("tree %d: %w", i, err)
		}
	}
	if err := c.drawHero(dev, w); err != nil {
		return fmt.Errorf("hero: %w", err)
	}
	if c.config.ShowBounds {
		if err := c.drawBounds(dev, w); err != nil {
			return fmt.Errorf("bounds: %w", err)
		}
	}

	if s, ok := dev.(render.Stacked); ok {
		if err := s.Transforms().Expect(0); err != nil {
			return fmt.Errorf("end of frame: %w", err)
		}
	}
	return nil
}

func (c *Composer) drawGround(dev render.Device) error {
	e := c.config.GroundExtent
	return render.WithTransform(dev, math.Scale(e, 1, e), func() error {
		dev.SetMaterialColor(GroundColor)
		dev.DrawPrimitive(render.TriangleStrip, c.config.GroundHandle, GroundVertexCount)
		return nil
	})
}

func (c *Composer) drawHero(dev render.Device, w *world.World) error {
	if w.Hero == world.HeroFigure {
		return w.Figure.Draw(dev)
	}
	return w.Car.Draw(dev)
}

func (c *Composer) drawBounds(dev render.Device, w *world.World) error {
	dev.DisableLighting()
	defer dev.EnableLighting()
	dev.SetMaterialColor(BoundsColor)

	box := func(m math.Mat4) error {
		return render.WithTransform(dev, m, func() error {
			dev.DrawPrimitive(render.Lines, c.config.BoundsHandle, BoundsVertexCount)
			return nil
		})
	}
	for _, t := range w.Trees {
		if err := box(t.Bounds()); err != nil {
			return err
		}
	}
	if w.Hero == world.HeroFigure {
		return box(w.Figure.Bounds())
	}
	return box(w.Car.Bounds())
}

// DrawTree draws the trunk and the three leaf layers, each in its own scope.
func DrawTree(dev render.Device, t forest.Tree) error {
	for _, p := range t.Parts() {
		dev.SetMaterialColor(p.Color)
		err := render.WithTransform(dev, p.Model, func() error {
			dev.DrawSolidCube(1)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
