package viz

import (
	"math"

	"github.com/vanderheijden86/nestviz/pkg/model"
	"github.com/vanderheijden86/nestviz/pkg/sim"
)

// dragAlphaTarget keeps the simulation warm while a node is held so the rest
// of the layout keeps adjusting under the pointer.
const dragAlphaTarget = 0.3

// ClickThreshold is the screen-space distance (in pixels) a press may travel
// and still count as a click rather than a drag.
const ClickThreshold = 3.0

// Drag is one press-move-release gesture on a node. A press that never moves
// past ClickThreshold is reported as a click by End; an actual drag pins the
// node for its duration and releases it to free simulation afterwards.
type Drag struct {
	engine *sim.Engine
	node   *model.Node

	startX, startY float64 // screen coords at press
	moved          bool
}

// StartDrag begins a gesture on the picked node. The node is pinned at its
// current position immediately; the simulation is only disturbed once the
// pointer actually moves.
func StartDrag(e *sim.Engine, n *model.Node, sx, sy float64) *Drag {
	n.Pin(n.X, n.Y)
	return &Drag{engine: e, node: n, startX: sx, startY: sy}
}

// Node returns the node under the gesture.
func (d *Drag) Node() *model.Node { return d.node }

// Moved reports whether the gesture has crossed the click threshold.
func (d *Drag) Moved() bool { return d.moved }

// Move updates the pin to the pointer's world position. The first move past
// the threshold raises the simulation's alpha target so neighbors track the
// held node.
func (d *Drag) Move(sx, sy float64, t Transform) {
	if !d.moved && math.Hypot(sx-d.startX, sy-d.startY) > ClickThreshold {
		d.moved = true
		d.engine.SetAlphaTarget(dragAlphaTarget)
		d.engine.Reheat(dragAlphaTarget)
	}
	if !d.moved {
		return
	}
	wx, wy := t.Invert(sx, sy)
	d.node.Pin(wx, wy)
}

// End releases the gesture. The node is unpinned and the alpha target drops
// back to zero so the layout cools naturally. Returns true when the gesture
// was a click (no movement past the threshold).
func (d *Drag) End() bool {
	d.node.Unpin()
	if d.moved {
		d.engine.SetAlphaTarget(0)
	}
	return !d.moved
}
