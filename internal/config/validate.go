package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/woodland/internal/controls"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks ranges and names that would otherwise fail deep inside
// setup. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	g := c.Graphics
	check(g.Width > 0 && g.Height > 0, "graphics size %dx%d", g.Width, g.Height)
	check(g.FPSLimit >= 0, "graphics.fps_limit %d", g.FPSLimit)
	check(g.FOV > 0 && g.FOV < 180, "graphics.fov %v", g.FOV)
	check(g.Near > 0 && g.Far > g.Near, "graphics near/far %v/%v", g.Near, g.Far)

	s := c.Scene
	_, known := profiles[s.Profile]
	check(known, "scene.profile %q, want one of %v", s.Profile, Profiles())
	check(s.GridMin < s.GridMax, "scene grid [%d,%d)", s.GridMin, s.GridMax)
	check(s.TreeChance >= 0 && s.TreeChance <= 1, "scene.tree_chance %v", s.TreeChance)
	check(s.MaxTreeHeight > 0, "scene.max_tree_height %v", s.MaxTreeHeight)
	check(s.GroundExtent > 0, "scene.ground_extent %v", s.GroundExtent)
	check(s.Hero == "car" || s.Hero == "figure", "scene.hero %q", s.Hero)

	v := c.Vehicle
	check(v.Bound > 0 && v.Step > 0, "vehicle bound/step %v/%v", v.Bound, v.Step)

	cam := c.Camera
	check(cam.DragSensitivity > 0, "camera.drag_sensitivity %v", cam.DragSensitivity)
	check(cam.MinRadius > 0 && cam.MinRadius <= cam.MaxRadius, "camera radius limits %v..%v", cam.MinRadius, cam.MaxRadius)
	check(cam.Radius >= cam.MinRadius && cam.Radius <= cam.MaxRadius, "camera.radius %v", cam.Radius)

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "logging.level %q", c.Logging.Level)
	}
	check(c.Capture.Format == "png" || c.Capture.Format == "bmp", "capture.format %q", c.Capture.Format)

	if _, err := controls.NewBindings(c.Controls); err != nil {
		check(false, "controls: %v", err)
	}

	return errors.Join(errs...)
}
