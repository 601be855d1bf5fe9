// Package encode maps raw node and link attributes to visual attributes:
// archetype colors, node radii, and link stroke widths. All mappings are pure
// and are built once from the loaded graph before first render; filtering and
// interaction never rebuild them.
package encode

import (
	"fmt"
	"image/color"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

var archetypeColors = map[string]color.RGBA{
	model.ArchetypeBuilder:      {0x4e, 0x79, 0xa7, 0xff},
	model.ArchetypeDesigner:     {0xf2, 0x8e, 0x2b, 0xff},
	model.ArchetypeResearcher:   {0x59, 0xa1, 0x4f, 0xff},
	model.ArchetypeCommunicator: {0xe1, 0x57, 0x59, 0xff},
	model.ArchetypeStrategist:   {0xaf, 0x7a, 0xa1, 0xff},
}

// fallbackColor covers every archetype not in the table, including missing
// values. It must be used wherever an archetype color is rendered: ring,
// body, legend, and badge all go through ArchetypeColor.
var fallbackColor = color.RGBA{0xba, 0xb0, 0xac, 0xff}

// ArchetypeColor resolves an archetype to its display color, falling back to
// the shared fallback color for anything outside the fixed table.
func ArchetypeColor(archetype string) color.RGBA {
	if c, ok := archetypeColors[archetype]; ok {
		return c
	}
	return fallbackColor
}

// CSS formats a color as a #rrggbb hex string for SVG attributes.
func CSS(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
