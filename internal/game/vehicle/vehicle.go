// Package vehicle implements the drivable voxel car: its pose, movement and
// the transforms of its body and wheels.
package vehicle

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/woodland/internal/engine/render"
	"github.com/Faultbox/woodland/pkg/math"
)

// ErrWheelIndex is returned for wheel indices outside 1..4.
var ErrWheelIndex = errors.New("wheel index out of range")

const (
	// Width and Length of the wheel base, in cells.
	Width  = 4
	Length = 8

	// WheelCount is the number of wheels on the car.
	WheelCount = 4

	bobAmplitude = 0.5
	rideHeight   = 1.0
	axleHeight   = 1.0
)

var (
	// BodyColor is the colour of every body cell.
	BodyColor = render.Color{R: 1, G: 1, B: 1}
	// WheelColor is the colour of tyres and hubs.
	WheelColor = render.Color{R: 0.2, G: 0.2, B: 0.2}

	// Tyre is the cylinder drawn for each wheel.
	Tyre = render.Cylinder{Base: 1, Top: 1, Height: 1, Stacks: 10, Slices: 10}
	// Hub is the disk drawn for each wheel.
	Hub = render.Disk{Inner: 0.2, Outer: 1, Slices: 10, Rings: 1}
)

// Limits bounds movement and animation rates.
type Limits struct {
	Bound    float32 // position stays within [-Bound, Bound] on both axes
	Step     float32 // distance per drive input
	TurnRate float32 // heading change per turn input
	SpinStep float32 // wheel spin change per drive input
	BobStep  float32 // body bob phase advance per frame
}

// DefaultLimits returns the canonical driving parameters.
func DefaultLimits() Limits {
	return Limits{
		Bound:    50,
		Step:     0.5,
		TurnRate: 0.05,
		SpinStep: 0.5,
		BobStep:  0.05,
	}
}

// Pose is the mutable state of the car.
type Pose struct {
	X, Z      float32 // ground-plane position
	Heading   float32 // radians about +Y
	WheelSpin float32 // accumulated wheel rotation
	BobPhase  float32 // body bob phase, grows forever
}

// Car is a pose plus the limits that govern it.
type Car struct {
	Pose   Pose
	Limits Limits
}

// New creates a car at the origin facing along -X.
func New(l Limits) *Car {
	return &Car{
		Pose:   Pose{Heading: -math32.Pi / 2},
		Limits: l,
	}
}

// Position returns the car's root position.
func (c *Car) Position() math.Vec3 {
	return math.Vec3{X: c.Pose.X, Z: c.Pose.Z}
}

// Forward drives one step along the heading.
//
// WheelSpin keeps accumulating while driving; there is no friction term.
func (c *Car) Forward() {
	c.Pose.WheelSpin -= c.Limits.SpinStep
	c.move(1)
}

// Backward drives one step against the heading.
func (c *Car) Backward() {
	c.Pose.WheelSpin += c.Limits.SpinStep
	c.move(-1)
}

// TurnLeft rotates the heading counter-clockwise.
func (c *Car) TurnLeft() {
	c.Pose.Heading += c.Limits.TurnRate
}

// TurnRight rotates the heading clockwise.
func (c *Car) TurnRight() {
	c.Pose.Heading -= c.Limits.TurnRate
}

// Advance moves the body bob forward by one frame.
func (c *Car) Advance() {
	c.Pose.BobPhase += c.Limits.BobStep
}

// move steps each axis independently, and only when the stepped value stays
// inside the bound. Near the edge the car stops short of it.
func (c *Car) move(sign float32) {
	step := sign * c.Limits.Step
	c.Pose.X = stepWithin(c.Pose.X, math32.Sin(c.Pose.Heading)*step, c.Limits.Bound)
	c.Pose.Z = stepWithin(c.Pose.Z, math32.Cos(c.Pose.Heading)*step, c.Limits.Bound)
}

func stepWithin(v, delta, bound float32) float32 {
	if next := v + delta; next >= -bound && next <= bound {
		return next
	}
	return v
}

// Root returns translate(x, 0, z) * rotateY(heading).
func (c *Car) Root() math.Mat4 {
	return math.Translate(c.Pose.X, 0, c.Pose.Z).Mul(math.RotateY(c.Pose.Heading))
}

// BodyTransform places the body relative to the root, lifted by the bob.
func (c *Car) BodyTransform() math.Mat4 {
	lift := bobAmplitude*math32.Sin(c.Pose.BobPhase) + rideHeight
	return math.Translate(-1.5, lift, -3.5)
}

// WheelTransforms returns the tyre and hub transforms of wheel i, relative
// to the root. Wheels are 1 front-left, 2 rear-left, 3 front-right,
// 4 rear-right; right-side wheels are turned half a revolution.
func (c *Car) WheelTransforms(i int) (tyre, hub math.Mat4, err error) {
	var x, z float32
	facing := float32(math32.Pi / 2)
	switch i {
	case 1:
		x, z = -Width/2, Length/2
	case 2:
		x, z = -Width/2, -Length/2
	case 3:
		x, z = Width/2, Length/2
		facing += math32.Pi
	case 4:
		x, z = Width/2, -Length/2
		facing += math32.Pi
	default:
		return tyre, hub, fmt.Errorf("%w: %d", ErrWheelIndex, i)
	}

	spin := math32.Pi + c.Pose.WheelSpin
	base := math.Translate(0, axleHeight, 0).Mul(math.Translate(x, 0, z))
	tyre = base.Mul(math.RotateZ(facing)).Mul(math.RotateY(spin))
	hub = base.Mul(math.RotateY(facing)).Mul(math.RotateZ(spin))
	return tyre, hub, nil
}

// Bounds returns a unit-cube transform enclosing the body and wheels at any
// bob phase. Tyres reach one unit past the wheel base on every side and the
// roof peaks when the bob is highest.
func (c *Car) Bounds() math.Mat4 {
	const top = rideHeight + bobAmplitude + 3.5
	return c.Root().Mul(math.Translate(0, top/2, 0)).Mul(math.Scale(Width+2, top, Length+2))
}

// Draw issues the car's draw calls. The caller's transform stack depth is
// unchanged on return.
func (c *Car) Draw(dev render.Device) error {
	return render.WithTransform(dev, c.Root(), func() error {
		if err := c.drawBody(dev); err != nil {
			return fmt.Errorf("body: %w", err)
		}
		for i := 1; i <= WheelCount; i++ {
			if err := c.drawWheel(dev, i); err != nil {
				return fmt.Errorf("wheel %d: %w", i, err)
			}
		}
		return nil
	})
}

func (c *Car) drawBody(dev render.Device) error {
	return render.WithTransform(dev, c.BodyTransform(), func() error {
		dev.SetMaterialColor(BodyColor)
		for _, cell := range BodyCells() {
			err := render.WithTransform(dev, math.TranslateVec(cell), func() error {
				dev.DrawSolidCubeFlat(1)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Car) drawWheel(dev render.Device, i int) error {
	tyre, hub, err := c.WheelTransforms(i)
	if err != nil {
		return err
	}
	dev.SetMaterialColor(WheelColor)
	if err := render.WithTransform(dev, tyre, func() error {
		dev.DrawSolidCylinder(Tyre)
		return nil
	}); err != nil {
		return err
	}
	return render.WithTransform(dev, hub, func() error {
		dev.DrawSolidDisk(Hub)
		return nil
	})
}
