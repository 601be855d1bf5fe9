// Package scene builds the drawable shape list from the graph, the visual
// encoding, the simulation's current positions, and the active filter result.
// The scene is a plain ordered structure: links first, then nodes back to
// front, so every renderer (SVG, PNG, terminal cells) draws the same picture
// by walking it in order.
package scene

import (
	"image/color"
	"time"

	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/filter"
	"github.com/vanderheijden86/nestviz/pkg/model"
)

// EmptyPlaceholder is shown instead of shapes when the graph has no nodes.
const EmptyPlaceholder = "No collaborators to display"

// LinkShape is one collaboration edge ready to draw. Endpoint coordinates
// are refreshed from the simulation by ApplyTick.
type LinkShape struct {
	Link           *model.Link
	X1, Y1, X2, Y2 float64
	Width          float64
	Opacity        float64

	fadeFrom, fadeTo float64
}

// NodeShape is one person ready to draw: a colored body with a ring outline
// and a first-name label beneath it.
type NodeShape struct {
	Node        *model.Node
	X, Y        float64
	Radius      float64
	Fill        color.RGBA
	Label       string
	Opacity     float64
	Highlighted bool
	Selected    bool

	fadeFrom, fadeTo float64
}

// LegendEntry maps an archetype name to its swatch color.
type LegendEntry struct {
	Label string
	Color color.RGBA
}

// Scene is the complete drawable state. Draw order is Links in slice order,
// then Nodes in slice order, then the legend on top.
type Scene struct {
	Links  []*LinkShape
	Nodes  []*NodeShape
	Legend []LegendEntry

	graph     *model.Graph
	fadeStart time.Time
	fading    bool
}

// Build constructs the scene from a loaded graph and its encoding scales.
// The scales are built once at load; Build never recomputes them. An empty
// graph yields a scene with no shapes, which renderers replace with
// EmptyPlaceholder.
func Build(g *model.Graph, radius, width encode.Linear) *Scene {
	s := &Scene{graph: g}
	for _, l := range g.Links {
		s.Links = append(s.Links, &LinkShape{
			Link:    l,
			Width:   encode.LinkWidth(width, l),
			Opacity: filter.FullOpacity,
		})
	}
	for _, n := range g.Nodes {
		s.Nodes = append(s.Nodes, &NodeShape{
			Node:    n,
			Radius:  encode.NodeRadius(radius, n),
			Fill:    encode.ArchetypeColor(n.Archetype),
			Label:   n.FirstName(),
			Opacity: filter.FullOpacity,
		})
	}
	s.Legend = buildLegend(g)
	s.ApplyTick()
	return s
}

// buildLegend lists the archetypes actually present in the graph, sorted,
// the same set that feeds the filter selectors. Unrecognised values collapse
// into a single trailing fallback entry in the color the nodes fall back to.
func buildLegend(g *model.Graph) []LegendEntry {
	fallback := encode.ArchetypeColor(model.ArchetypeUnknown)
	var out []LegendEntry
	for _, a := range g.Archetypes() {
		if c := encode.ArchetypeColor(a); c != fallback {
			out = append(out, LegendEntry{Label: a, Color: c})
		}
	}
	for _, n := range g.Nodes {
		if encode.ArchetypeColor(n.Archetype) == fallback {
			out = append(out, LegendEntry{Label: model.ArchetypeUnknown, Color: fallback})
			break
		}
	}
	return out
}

// Empty reports whether the scene has nothing to draw.
func (s *Scene) Empty() bool {
	return len(s.Nodes) == 0
}

// ApplyTick copies the simulation's current positions into the shapes.
// Nothing else changes on a tick.
func (s *Scene) ApplyTick() {
	for _, l := range s.Links {
		l.X1, l.Y1 = l.Link.Source.X, l.Link.Source.Y
		l.X2, l.Y2 = l.Link.Target.X, l.Link.Target.Y
	}
	for _, n := range s.Nodes {
		n.X, n.Y = n.Node.X, n.Node.Y
	}
}

// ApplyFilter retargets per-shape opacity and highlight from a filter result.
// Shapes are dimmed, never removed, so the network's structure stays visible
// under any filter. Opacities fade toward their targets over
// filter.TransitionDuration; AdvanceFade moves them each frame.
func (s *Scene) ApplyFilter(r *filter.Result) {
	linkOpacity := r.LinkOpacity()
	for _, l := range s.Links {
		l.fadeFrom, l.fadeTo = l.Opacity, linkOpacity
	}
	for _, n := range s.Nodes {
		n.fadeFrom, n.fadeTo = n.Opacity, r.NodeOpacity(n.Node)
		n.Highlighted = r.NodeHighlighted(n.Node)
	}
	s.fadeStart = time.Now()
	s.fading = true
}

// AdvanceFade interpolates shape opacities toward their targets as of now.
// It reports whether the fade still needs another frame.
func (s *Scene) AdvanceFade(now time.Time) bool {
	if !s.fading {
		return false
	}
	t := float64(now.Sub(s.fadeStart)) / float64(filter.TransitionDuration)
	if t < 0 {
		t = 0
	}
	if t >= 1 {
		t = 1
		s.fading = false
	}
	for _, l := range s.Links {
		l.Opacity = l.fadeFrom + (l.fadeTo-l.fadeFrom)*t
	}
	for _, n := range s.Nodes {
		n.Opacity = n.fadeFrom + (n.fadeTo-n.fadeFrom)*t
	}
	return s.fading
}

// FinishFade snaps opacities to their targets, for renders that must not
// capture a mid-fade frame.
func (s *Scene) FinishFade() {
	s.AdvanceFade(s.fadeStart.Add(filter.TransitionDuration))
}

// SetSelected marks the node open in the detail panel, or clears the mark
// with nil.
func (s *Scene) SetSelected(sel *model.Node) {
	for _, n := range s.Nodes {
		n.Selected = n.Node == sel
	}
}
