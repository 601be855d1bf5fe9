package viz

import (
	"fmt"
	"strings"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// tooltipOffset is the fixed gap between the pointer and the tooltip box.
const tooltipOffset = 12.0

// maxTooltipCapabilities caps the capability list shown on hover; the detail
// panel shows the rest.
const maxTooltipCapabilities = 3

// TooltipLines builds the hover tooltip content for a node: name, archetype,
// department, up to three capabilities, and the collaboration count.
func TooltipLines(n *model.Node) []string {
	caps := "none"
	if len(n.Capabilities) > 0 {
		shown := n.Capabilities
		if len(shown) > maxTooltipCapabilities {
			shown = shown[:maxTooltipCapabilities]
		}
		caps = strings.Join(shown, ", ")
	}
	archetype := n.Archetype
	if archetype == "" {
		archetype = model.ArchetypeUnknown
	}
	return []string{
		n.Name,
		fmt.Sprintf("%s · %s", archetype, n.Department),
		fmt.Sprintf("Capabilities: %s", caps),
		fmt.Sprintf("Collaborations: %d", n.CollabCount),
	}
}

// PlaceTooltip positions a w×h box near the pointer (px, py): offset by a
// fixed amount toward the bottom-right, flipped to the opposite side of the
// pointer on the axes where the box would cross the viewport's right or
// bottom edge, then clamped to stay on screen.
func PlaceTooltip(px, py, w, h float64, vp Viewport) (float64, float64) {
	x := px + tooltipOffset
	y := py + tooltipOffset
	if x+w > vp.Width {
		x = px - tooltipOffset - w
	}
	if y+h > vp.Height {
		y = py - tooltipOffset - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
