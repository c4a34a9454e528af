// Package figure draws TriangleMan, a flat-shaded figure made of three
// coloured triangles around a cube.
package figure

import (
	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/pkg/math"
)

// TriangleVertexCount is the vertex count of the shared triangle mesh.
const TriangleVertexCount = 3

// raisedLift is how far the head triangle moves when raised.
const raisedLift = 5

var (
	Red   = render.Color{R: 0.9}
	Green = render.Color{G: 0.9}
	Blue  = render.Color{B: 0.9}
)

// Figure is TriangleMan. Triangle is the uploaded triangle mesh.
type Figure struct {
	Position math.Vec3
	Facing   float32
	Raised   bool
	Triangle render.Handle
}

// New places a figure at its usual spot, 10 units along +X.
func New(triangle render.Handle) *Figure {
	return &Figure{
		Position: math.Vec3{X: 10},
		Facing:   1,
		Triangle: triangle,
	}
}

// Toggle raises or lowers the head triangle.
func (f *Figure) Toggle() {
	f.Raised = !f.Raised
}

// Root returns the figure's placement.
func (f *Figure) Root() math.Mat4 {
	return math.TranslateVec(f.Position).Mul(math.RotateY(f.Facing + 1.57))
}

// Bounds returns a unit-cube transform enclosing the cube and triangles. The
// box stretches along local +Z to follow a raised head.
func (f *Figure) Bounds() math.Mat4 {
	near, far := float32(-0.5), float32(0.5)
	if f.Raised {
		far = raisedLift
	}
	return f.Root().Mul(math.Translate(0, 0.25, (near+far)/2)).Mul(math.Scale(7, 6.5, far-near))
}

// Draw issues the figure's draw calls unlit, then turns lighting back on.
func (f *Figure) Draw(dev render.Device) error {
	dev.DisableLighting()
	defer dev.EnableLighting()

	return render.WithTransform(dev, f.Root(), func() error {
		var lift float32
		if f.Raised {
			lift = raisedLift
		}
		err := render.WithTransform(dev, math.Translate(0, 0, lift), func() error {
			return f.triangle(dev, Green, math.Translate(1.75, 2.5, 0))
		})
		if err != nil {
			return err
		}
		if err := f.triangle(dev, Blue, math.Translate(2.5, -2, 0)); err != nil {
			return err
		}
		dev.DrawSolidCube(1)
		return f.triangle(dev, Red, math.Translate(-2.5, -2, 0))
	})
}

func (f *Figure) triangle(dev render.Device, c render.Color, at math.Mat4) error {
	dev.SetMaterialColor(c)
	return render.WithTransform(dev, at, func() error {
		dev.DrawPrimitive(render.Triangles, f.Triangle, TriangleVertexCount)
		return nil
	})
}
