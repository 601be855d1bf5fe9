// Package filter computes node and link emphasis from the active search and
// category criteria. Filtering never mutates the graph or the layout: it is a
// pure function from (graph, criteria) to per-node match flags, and the
// renderer expresses a non-match as reduced opacity rather than removal.
package filter

import (
	"strings"
	"time"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// Opacity levels applied by the renderer. Dimmed elements stay visible so the
// network's shape survives any filter.
const (
	FullOpacity       = 1.0
	DimmedOpacity     = 0.15
	DimmedLinkOpacity = 0.2
)

// TransitionDuration is how long the renderer animates an opacity change
// after the criteria change.
const TransitionDuration = 200 * time.Millisecond

// State holds the active criteria. Zero values mean "no constraint"; the
// criteria compose conjunctively.
type State struct {
	Search     string // case-insensitive substring on the full name
	Department string // exact match
	Archetype  string // exact match
}

// Active reports whether any criterion is set. An inactive state matches
// every node, restoring the unfiltered baseline.
func (s State) Active() bool {
	return s.Search != "" || s.Department != "" || s.Archetype != ""
}

// MatchesSearch reports whether the node's name contains the search term,
// case-insensitively. An empty term matches everything.
func (s State) MatchesSearch(n *model.Node) bool {
	if s.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(n.Name), strings.ToLower(s.Search))
}

// Matches reports whether the node satisfies every active criterion.
func (s State) Matches(n *model.Node) bool {
	if !s.MatchesSearch(n) {
		return false
	}
	if s.Department != "" && n.Department != s.Department {
		return false
	}
	if s.Archetype != "" && n.Archetype != s.Archetype {
		return false
	}
	return true
}

// Result is one evaluation of the criteria over a graph.
type Result struct {
	matched     map[int]bool
	highlighted map[int]bool
	active      bool

	// MatchCount is the number of matching nodes, shown in the status bar.
	MatchCount int
}

// Apply evaluates the criteria against every node. With inactive criteria
// every node matches.
func Apply(g *model.Graph, s State) *Result {
	r := &Result{
		matched:     make(map[int]bool, len(g.Nodes)),
		highlighted: make(map[int]bool, len(g.Nodes)),
		active:      s.Active(),
	}
	for _, n := range g.Nodes {
		ok := s.Matches(n)
		r.matched[n.ID] = ok
		if ok {
			r.MatchCount++
		}
		// Highlight tracks the search term alone so a category filter does
		// not wash out search hits.
		r.highlighted[n.ID] = s.Search != "" && s.MatchesSearch(n)
	}
	return r
}

// NodeMatched reports whether the node satisfied the criteria.
func (r *Result) NodeMatched(n *model.Node) bool {
	return r.matched[n.ID]
}

// NodeHighlighted reports whether the node is a search hit, regardless of the
// category filters.
func (r *Result) NodeHighlighted(n *model.Node) bool {
	return r.highlighted[n.ID]
}

// NodeOpacity returns the render opacity for a node under this result.
func (r *Result) NodeOpacity(n *model.Node) float64 {
	if r.matched[n.ID] {
		return FullOpacity
	}
	return DimmedOpacity
}

// LinkOpacity returns the render opacity for links. Links are not filtered by
// endpoint: whenever any criterion is active, every link drops uniformly to
// the dimmed level so the network's shape stays readable.
func (r *Result) LinkOpacity() float64 {
	if !r.active {
		return FullOpacity
	}
	return DimmedLinkOpacity
}

// Active reports whether the result came from active criteria. The renderer
// skips opacity work entirely for an inactive result.
func (r *Result) Active() bool {
	return r.active
}
