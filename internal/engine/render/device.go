// Package render defines the drawing boundary the game talks to. The OpenGL
// implementation lives in the renderer package; Recorder is an in-memory one.
package render

import (
	"errors"

	"github.com/Faultbox/woodland/internal/engine/xform"
	"github.com/Faultbox/woodland/pkg/math"
)

// Color is a linear RGB material colour.
type Color struct {
	R, G, B float32
}

// Primitive selects how DrawPrimitive assembles vertices.
type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
	Lines
)

// Handle is an opaque reference to uploaded vertex data.
type Handle uint32

// Cylinder parameters. The tube runs along +Y from 0 to Height.
type Cylinder struct {
	Base, Top, Height float32
	Stacks, Slices    int
}

// Disk parameters.
type Disk struct {
	Inner, Outer  float32
	Slices, Rings int
}

// Light is a single directional light.
type Light struct {
	Direction math.Vec3
	Color     Color
}

// Device is the immediate-mode drawing API. Draw calls use the top of the
// device's transform stack as the model matrix, or the world frame when
// nothing has been pushed.
type Device interface {
	PushTransform(m math.Mat4)
	PopTransform() error
	SetMaterialColor(c Color)
	DrawSolidCube(size float32)
	DrawSolidCubeFlat(size float32)
	DrawSolidCylinder(c Cylinder)
	DrawSolidDisk(d Disk)
	DrawPrimitive(mode Primitive, h Handle, count int32)
	SetViewMatrix(m math.Mat4)
	SetProjectionMatrix(m math.Mat4)
	SetLight(l Light)
	EnableLighting()
	DisableLighting()
}

// Stacked is implemented by devices that expose their transform stack, so
// callers can check it is balanced.
type Stacked interface {
	Transforms() *xform.Stack
}

// WithTransform runs fn inside a pushed transform and always pops it again,
// whatever fn returns.
func WithTransform(dev Device, m math.Mat4, fn func() error) error {
	dev.PushTransform(m)
	err := fn()
	if popErr := dev.PopTransform(); popErr != nil {
		return errors.Join(err, popErr)
	}
	return err
}
