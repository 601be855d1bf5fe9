package viz

import (
	"math"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// PickNode returns the topmost node under the world point (wx, wy), or nil.
// Nodes render in slice order, so the last hit wins; the hit radius is the
// node's visual radius. Dimmed nodes stay pickable.
func PickNode(nodes []*model.Node, radiusOf func(*model.Node) float64, wx, wy float64) *model.Node {
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		r := radiusOf(n)
		if math.Hypot(wx-n.X, wy-n.Y) <= r {
			return n
		}
	}
	return nil
}
