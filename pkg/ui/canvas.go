package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/filter"
	"github.com/vanderheijden86/nestviz/pkg/scene"
	"github.com/vanderheijden86/nestviz/pkg/viz"
)

// Terminal cells are taller than wide; the canvas maps one cell to a
// CellW x CellH region of world space so circles stay roughly round.
const (
	CellW = 10.0
	CellH = 20.0
)

// Node glyphs by state.
const (
	glyphNode        = '●'
	glyphHighlighted = '◉'
	glyphSelected    = '◎'
	glyphLink        = '·'
)

type cell struct {
	ch    rune
	style lipgloss.Style
	set   bool
}

// canvas rasterizes the scene into a terminal cell grid. It is rebuilt every
// frame; the zoom/pan transform is applied here, not to the node positions.
type canvas struct {
	cols, rows int
	cells      []cell
	theme      Theme
}

func newCanvas(cols, rows int, theme Theme) *canvas {
	return &canvas{cols: cols, rows: rows, cells: make([]cell, cols*rows), theme: theme}
}

func (c *canvas) put(col, row int, ch rune, style lipgloss.Style) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{ch: ch, style: style, set: true}
}

// putString advances by display width, not byte offset, so multibyte and
// wide runes keep columns aligned. The cell after a wide rune is marked as
// covered so render emits nothing for it.
func (c *canvas) putString(col, row int, s string, style lipgloss.Style) {
	w := 0
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		c.put(col+w, row, ch, style)
		if cw == 2 {
			c.cover(col+w+1, row)
		}
		w += cw
	}
}

func (c *canvas) cover(col, row int) {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	c.cells[row*c.cols+col] = cell{set: true}
}

// toCell maps a world point through the transform into cell coordinates.
func toCell(t viz.Transform, wx, wy float64) (int, int) {
	sx, sy := t.Apply(wx, wy)
	return int(sx / CellW), int(sy / CellH)
}

// drawScene paints links, then nodes, then labels, matching the scene's draw
// order. Dimmed shapes render faint instead of translucent.
func (c *canvas) drawScene(s *scene.Scene, t viz.Transform) {
	if s.Empty() {
		msg := scene.EmptyPlaceholder
		c.putString((c.cols-runewidth.StringWidth(msg))/2, c.rows/2, msg, c.theme.Muted)
		return
	}

	for _, l := range s.Links {
		x1, y1 := toCell(t, l.X1, l.Y1)
		x2, y2 := toCell(t, l.X2, l.Y2)
		style := c.theme.Muted
		if l.Opacity < filter.FullOpacity {
			style = style.Faint(true)
		}
		c.line(x1, y1, x2, y2, style)
	}

	for _, n := range s.Nodes {
		col, row := toCell(t, n.X, n.Y)
		glyph := glyphNode
		if n.Selected {
			glyph = glyphSelected
		} else if n.Highlighted {
			glyph = glyphHighlighted
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(encode.CSS(n.Fill)))
		if n.Opacity < filter.FullOpacity {
			style = style.Faint(true)
		}
		c.put(col, row, glyph, style)
		if n.Label != "" && n.Opacity == filter.FullOpacity {
			c.putString(col+2, row, n.Label, c.theme.Label)
		}
	}
}

// line draws a Bresenham segment in link dots, skipping endpoints so node
// glyphs stay visible.
func (c *canvas) line(x1, y1, x2, y2 int, style lipgloss.Style) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		if x == x2 && y == y2 {
			break
		}
		if x != x1 || y != y1 {
			c.put(x, y, glyphLink, style)
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// drawTooltip overlays the hover tooltip near the pointer cell, flipping
// away from the canvas edges.
func (c *canvas) drawTooltip(lines []string, pointerCol, pointerRow int) {
	w := 0
	for _, l := range lines {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	px := float64(pointerCol) * CellW
	py := float64(pointerRow) * CellH
	vp := viz.Viewport{Width: float64(c.cols) * CellW, Height: float64(c.rows) * CellH}
	x, y := viz.PlaceTooltip(px, py, float64(w+2)*CellW, float64(len(lines))*CellH, vp)
	col, row := int(x/CellW), int(y/CellH)
	for i, l := range lines {
		style := c.theme.Muted
		if i == 0 {
			style = c.theme.Header
		}
		c.putString(col, row+i, l, style)
	}
}

// render flattens the grid into terminal lines.
func (c *canvas) render() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			cl := c.cells[row*c.cols+col]
			if !cl.set {
				b.WriteByte(' ')
				continue
			}
			if cl.ch == 0 {
				// Covered by a wide rune in the previous column.
				continue
			}
			b.WriteString(cl.style.Render(string(cl.ch)))
		}
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
