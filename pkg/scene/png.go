package scene

import (
	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font/basicfont"
)

// RenderPNG rasterizes the scene to a PNG file in the same draw order as the
// SVG output.
func (s *Scene) RenderPNG(path string, width, height int) error {
	dc := gg.NewContext(width, height)
	dc.SetColor(colorBackdrop)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if s.Empty() {
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(EmptyPlaceholder, float64(width)/2, float64(height)/2, 0.5, 0.5)
		return dc.SavePNG(path)
	}

	for _, l := range s.Links {
		dc.SetRGBA255(int(colorLink.R), int(colorLink.G), int(colorLink.B), int(255*l.Opacity))
		dc.SetLineWidth(l.Width)
		dc.DrawLine(l.X1, l.Y1, l.X2, l.Y2)
		dc.Stroke()
	}

	for _, n := range s.Nodes {
		ringR, ringOp := n.Radius+ringWidth, float64(ringOpacity)
		if n.Highlighted {
			ringR, ringOp = n.Radius+ringHighlightWidth, ringHighlightOpacity
		}
		dc.SetRGBA255(int(n.Fill.R), int(n.Fill.G), int(n.Fill.B), int(255*ringOp*n.Opacity))
		dc.DrawCircle(n.X, n.Y, ringR)
		dc.Fill()
		dc.SetRGBA255(int(n.Fill.R), int(n.Fill.G), int(n.Fill.B), int(255*n.Opacity))
		dc.DrawCircle(n.X, n.Y, n.Radius)
		dc.Fill()
		if n.Selected {
			dc.SetRGBA255(int(colorSelect.R), int(colorSelect.G), int(colorSelect.B), int(255*n.Opacity))
			dc.SetLineWidth(selectStrokeWidth)
			dc.DrawCircle(n.X, n.Y, n.Radius)
			dc.Stroke()
		}
		if n.Label != "" {
			dc.SetRGBA255(int(colorLabel.R), int(colorLabel.G), int(colorLabel.B), int(255*n.Opacity))
			dc.DrawStringAnchored(n.Label, n.X, n.Y+n.Radius+12, 0.5, 0.5)
		}
	}

	s.renderLegendPNG(dc, width)
	return dc.SavePNG(path)
}

func (s *Scene) renderLegendPNG(dc *gg.Context, width int) {
	boxW := 150.0
	boxH := float64(18*len(s.Legend) + 30)
	x := float64(width) - boxW - 20
	y := 20.0
	dc.SetColor(colorLegendBG)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 8)
	dc.Fill()
	dc.SetColor(colorSelect)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x, y, boxW, boxH, 8)
	dc.Stroke()

	dc.SetColor(colorLabel)
	dc.DrawStringAnchored("Archetypes", x+12, y+16, 0, 0.5)
	for i, e := range s.Legend {
		ry := y + 34 + 18*float64(i)
		dc.SetColor(e.Color)
		dc.DrawRoundedRectangle(x+12, ry-9, 12, 12, 3)
		dc.Fill()
		dc.SetColor(colorSubtle)
		dc.DrawStringAnchored(e.Label, x+30, ry-3, 0, 0.5)
	}
}
