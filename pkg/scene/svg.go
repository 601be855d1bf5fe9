package scene

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/vanderheijden86/nestviz/pkg/encode"
)

var (
	colorBackdrop = color.RGBA{0xf9, 0xfa, 0xfb, 0xff}
	colorLink     = color.RGBA{0x99, 0x99, 0x99, 0xff}
	colorSelect   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorLabel    = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorSubtle   = color.RGBA{0x66, 0x66, 0x66, 0xff}
	colorLegendBG = color.RGBA{0xee, 0xee, 0xee, 0xff}
)

// Ring geometry. The ring behind each body is the node's own archetype color
// at low opacity; highlighting widens the ring and raises its opacity rather
// than changing its color. Selection adds a dark stroke on the body.
const (
	ringWidth            = 2.0
	ringOpacity          = 0.25
	ringHighlightWidth   = 4.0
	ringHighlightOpacity = 0.9
	selectStrokeWidth    = 1.5
)

// RenderSVG writes the scene as a standalone SVG document. Shapes go out in
// scene order (links, then node rings and bodies and labels, then the
// legend); an empty scene renders the placeholder text instead.
func (s *Scene) RenderSVG(w io.Writer, width, height int) error {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", encode.CSS(colorBackdrop)))

	if s.Empty() {
		canvas.Text(width/2, height/2, EmptyPlaceholder,
			fmt.Sprintf("fill:%s;font-size:16px;font-family:monospace;text-anchor:middle", encode.CSS(colorSubtle)))
		canvas.End()
		return nil
	}

	for _, l := range s.Links {
		canvas.Line(int(l.X1), int(l.Y1), int(l.X2), int(l.Y2),
			fmt.Sprintf("stroke:%s;stroke-width:%.1f;stroke-opacity:%.2f",
				encode.CSS(colorLink), l.Width, l.Opacity))
	}

	for _, n := range s.Nodes {
		ringR, ringOp := n.Radius+ringWidth, float64(ringOpacity)
		if n.Highlighted {
			ringR, ringOp = n.Radius+ringHighlightWidth, ringHighlightOpacity
		}
		canvas.Circle(int(n.X), int(n.Y), int(ringR),
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", encode.CSS(n.Fill), ringOp*n.Opacity))
		body := fmt.Sprintf("fill:%s;fill-opacity:%.2f", encode.CSS(n.Fill), n.Opacity)
		if n.Selected {
			body += fmt.Sprintf(";stroke:%s;stroke-width:%.1f", encode.CSS(colorSelect), selectStrokeWidth)
		}
		canvas.Circle(int(n.X), int(n.Y), int(n.Radius), body)
		if n.Label != "" {
			canvas.Text(int(n.X), int(n.Y+n.Radius+14), n.Label,
				fmt.Sprintf("fill:%s;fill-opacity:%.2f;font-size:11px;font-family:monospace;text-anchor:middle",
					encode.CSS(colorLabel), n.Opacity))
		}
	}

	s.renderLegendSVG(canvas, width)
	canvas.End()
	return nil
}

func (s *Scene) renderLegendSVG(canvas *svg.SVG, width int) {
	boxW := 150
	boxH := 18*len(s.Legend) + 30
	x := width - boxW - 20
	y := 20
	canvas.Roundrect(x, y, boxW, boxH, 8, 8,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", encode.CSS(colorLegendBG), encode.CSS(colorSelect)))
	canvas.Text(x+12, y+18, "Archetypes",
		fmt.Sprintf("fill:%s;font-size:12px;font-family:monospace;font-weight:bold", encode.CSS(colorLabel)))
	for i, e := range s.Legend {
		ry := y + 34 + 18*i
		canvas.Roundrect(x+12, ry-9, 12, 12, 3, 3,
			fmt.Sprintf("fill:%s", encode.CSS(e.Color)))
		canvas.Text(x+30, ry, e.Label,
			fmt.Sprintf("fill:%s;font-size:11px;font-family:monospace", encode.CSS(colorSubtle)))
	}
}
