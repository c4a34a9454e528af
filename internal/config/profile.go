package config

// Profile names. Each one is a canned world size.
const (
	ProfileForest = "forest"
	ProfileGrove  = "grove"
)

type profile struct {
	far   float32
	bound int
}

var profiles = map[string]profile{
	ProfileForest: {far: 10000, bound: 50},
	ProfileGrove:  {far: 1000, bound: 40},
}

// Profiles lists the known profile names.
func Profiles() []string {
	return []string{ProfileForest, ProfileGrove}
}

// applyProfile sets the far plane, drive bound and forest grid for a profile.
// Unknown names are left for Validate to report.
func applyProfile(cfg *Config, name string) bool {
	p, ok := profiles[name]
	if !ok {
		return false
	}
	cfg.Scene.Profile = name
	cfg.Graphics.Far = p.far
	cfg.Vehicle.Bound = float32(p.bound)
	cfg.Scene.GridMin = -p.bound
	cfg.Scene.GridMax = p.bound
	return true
}
