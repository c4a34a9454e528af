// Package camera provides the spherical-coordinate camera used to view the scene.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/woodland/pkg/math"
)

// Mode selects how the camera is positioned.
type Mode int

const (
	// FirstPerson rides on the hero and looks along Dir.
	FirstPerson Mode = iota
	// ArcBall orbits the hero at Radius.
	ArcBall
	// FreeFly moves independently under thrust input.
	FreeFly
)

func (m Mode) String() string {
	switch m {
	case FirstPerson:
		return "first-person"
	case ArcBall:
		return "arc-ball"
	case FreeFly:
		return "free-fly"
	default:
		return "unknown"
	}
}

// next is the order the cycle control walks through.
func (m Mode) next() Mode {
	switch m {
	case FirstPerson:
		return FreeFly
	case FreeFly:
		return ArcBall
	default:
		return FirstPerson
	}
}

const (
	// PoleEpsilon keeps the polar angle off the poles.
	PoleEpsilon float32 = 0.001

	// Scenic defaults applied on every mode switch.
	ScenicAzimuth float32 = -math32.Pi / 3
	ScenicPolar   float32 = math32.Pi / 2.8
)

// Config holds the tunables for a Camera.
type Config struct {
	Azimuth         float32
	Polar           float32
	Radius          float32
	Position        math.Vec3
	Speed           float32 // free-fly thrust per frame
	DragSensitivity float32
	ZoomSensitivity float32
	MinRadius       float32
	MaxRadius       float32
	EyeHeight       float32 // first-person eye above the hero
}

// DefaultConfig returns the scenic starting point.
func DefaultConfig() Config {
	return Config{
		Azimuth:         -math32.Pi / 2,
		Polar:           1.5,
		Radius:          20,
		Position:        math.Vec3{X: 60, Y: 40, Z: 30},
		Speed:           0.25,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.05,
		MinRadius:       2,
		MaxRadius:       200,
		EyeHeight:       6,
	}
}

// Camera holds spherical angles and the derived direction. Dir is recomputed
// after every mutation and never set directly.
type Camera struct {
	mode     Mode
	azimuth  float32
	polar    float32
	radius   float32
	position math.Vec3
	dir      math.Vec3

	cfg Config
}

// New creates a first-person camera.
func New(cfg Config) *Camera {
	c := &Camera{
		mode:     FirstPerson,
		azimuth:  cfg.Azimuth,
		polar:    cfg.Polar,
		radius:   cfg.Radius,
		position: cfg.Position,
		cfg:      cfg,
	}
	c.recompute()
	return c
}

// Mode returns the active mode.
func (c *Camera) Mode() Mode { return c.mode }

// Azimuth returns θ.
func (c *Camera) Azimuth() float32 { return c.azimuth }

// Polar returns φ.
func (c *Camera) Polar() float32 { return c.polar }

// Radius returns the orbit distance.
func (c *Camera) Radius() float32 { return c.radius }

// Position returns the free-fly eye position.
func (c *Camera) Position() math.Vec3 { return c.position }

// Dir returns the derived direction vector.
func (c *Camera) Dir() math.Vec3 { return c.dir }

// CycleMode advances to the next mode and re-frames the view.
func (c *Camera) CycleMode() Mode {
	c.mode = c.mode.next()
	c.azimuth = ScenicAzimuth
	c.polar = ScenicPolar
	c.recompute()
	return c.mode
}

// Drag applies a mouse drag in pixels. With zoom held the vertical component
// changes the radius instead of the polar angle.
func (c *Camera) Drag(dx, dy float32, zoom bool) {
	c.azimuth += dx * c.cfg.DragSensitivity
	if zoom {
		c.radius += dy * c.cfg.ZoomSensitivity
		c.radius = clamp(c.radius, c.cfg.MinRadius, c.cfg.MaxRadius)
	} else {
		c.polar -= dy * c.cfg.DragSensitivity
	}
	c.recompute()
}

// Turn rotates the azimuth by delta radians.
func (c *Camera) Turn(delta float32) {
	c.azimuth += delta
	c.recompute()
}

// Thrust moves the free-fly eye along Dir; sign is +1 forward, -1 backward.
// It does nothing in the other modes.
func (c *Camera) Thrust(sign float32) {
	if c.mode != FreeFly {
		return
	}
	c.position = c.position.Add(c.dir.Scale(c.cfg.Speed * sign))
}

// Eye returns the eye and look-at points for the given hero position.
func (c *Camera) Eye(target math.Vec3) (eye, center math.Vec3) {
	switch c.mode {
	case ArcBall:
		return target.Add(c.dir), target
	case FirstPerson:
		eye = target.Add(math.Vec3{Y: c.cfg.EyeHeight})
		return eye, eye.Add(c.dir)
	default:
		return c.position, c.position.Add(c.dir)
	}
}

// View returns the view matrix for the given hero position.
func (c *Camera) View(target math.Vec3) math.Mat4 {
	eye, center := c.Eye(target)
	return math.LookAt(eye, center, math.Up)
}

func (c *Camera) recompute() {
	c.polar = ClampPolar(c.polar)
	c.dir = Direction(c.mode, c.azimuth, c.polar, c.radius)
}

// ClampPolar keeps phi inside the open interval (0, π).
func ClampPolar(phi float32) float32 {
	if phi <= 0 {
		return PoleEpsilon
	}
	if phi >= math32.Pi {
		return math32.Pi - PoleEpsilon
	}
	return phi
}

// Direction converts spherical angles to the mode's cartesian direction.
// Arc-ball points from the pivot up towards the eye and carries the radius;
// the other modes return a unit look direction.
func Direction(mode Mode, theta, phi, radius float32) math.Vec3 {
	sinPhi := math32.Sin(phi)
	d := math.Vec3{
		X: sinPhi * math32.Sin(theta),
		Y: -math32.Cos(phi),
		Z: -sinPhi * math32.Cos(theta),
	}
	if mode == ArcBall {
		d.Y = -d.Y
		return d.Normalize().Scale(radius)
	}
	return d.Normalize()
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
