package viz

import "github.com/vanderheijden86/nestviz/pkg/sim"

// Viewport is the drawable canvas size in world units at scale 1. It is a
// plain value passed to whoever needs it; resize produces a new value.
type Viewport struct {
	Width  float64
	Height float64
}

// Center returns the viewport midpoint, the target of the centering force.
func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// resizeReheat is the energy injected after a resize, enough for the layout
// to drift to the new center without restarting from scratch.
const resizeReheat = 0.3

// Recenter points the simulation at the viewport's new midpoint and reheats
// it. Zoom, filters, and any open panel are not touched on resize.
func (v Viewport) Recenter(e *sim.Engine) {
	cx, cy := v.Center()
	e.SetCenter(cx, cy)
	e.Reheat(resizeReheat)
}
