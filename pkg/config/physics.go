package config

import "github.com/vanderheijden86/nestviz/pkg/sim"

// Apply overlays the configured physics overrides onto an engine config.
// Only positive values override; zero keeps the built-in default.
func (p PhysicsConfig) Apply(c sim.Config) sim.Config {
	if p.LinkDistance > 0 {
		c.LinkDistance = p.LinkDistance
	}
	if p.Repulsion > 0 {
		c.Repulsion = p.Repulsion
	}
	if p.CenterStrength > 0 {
		c.CenterStrength = p.CenterStrength
	}
	if p.VelocityDecay > 0 {
		c.VelocityDecay = p.VelocityDecay
	}
	return c
}
