// Package viz holds the interaction layer between pointer input and the
// scene: the zoom/pan transform, node picking, the drag gesture, the hover
// tooltip, the detail panel, and the viewport value. Nothing here owns node
// positions; the transform applies to the rendered scene as a whole and the
// drag gesture goes through the simulation's pin fields.
package viz

// Zoom scale bounds.
const (
	MinScale = 0.2
	MaxScale = 5.0
)

// Transform maps world (simulation) coordinates to screen coordinates:
// screen = world*Scale + T.
type Transform struct {
	Scale  float64
	TX, TY float64
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{Scale: 1}
}

// Apply maps a world point to screen space.
func (t Transform) Apply(wx, wy float64) (float64, float64) {
	return wx*t.Scale + t.TX, wy*t.Scale + t.TY
}

// Invert maps a screen point back to world space.
func (t Transform) Invert(sx, sy float64) (float64, float64) {
	return (sx - t.TX) / t.Scale, (sy - t.TY) / t.Scale
}

// Pan shifts the view by a screen-space delta.
func (t Transform) Pan(dx, dy float64) Transform {
	t.TX += dx
	t.TY += dy
	return t
}

// ZoomAround scales the view by factor while keeping the screen point
// (ax, ay) over the same world point. The resulting scale is clamped, and the
// translation is derived from the clamped scale so the anchor holds even at
// the bounds.
func (t Transform) ZoomAround(factor, ax, ay float64) Transform {
	ns := t.Scale * factor
	if ns < MinScale {
		ns = MinScale
	}
	if ns > MaxScale {
		ns = MaxScale
	}
	wx, wy := t.Invert(ax, ay)
	t.Scale = ns
	t.TX = ax - wx*ns
	t.TY = ay - wy*ns
	return t
}
