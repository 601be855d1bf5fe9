package encode

import "github.com/vanderheijden86/nestviz/pkg/model"

// Visual ranges for the two scales. The radius floor keeps zero-collaboration
// nodes visible rather than degenerate.
const (
	MinRadius    = 6.0
	MaxRadius    = 22.0
	MinLinkWidth = 1.5
	MaxLinkWidth = 6.0
)

// Linear maps a fixed input domain onto a fixed output range, clamping
// out-of-domain values to the nearest endpoint.
type Linear struct {
	d0, d1 float64
	r0, r1 float64
}

// NewLinear builds a linear scale. Callers guard against a zero-width domain
// (the "or 1" fallback below); a degenerate domain maps everything to r0.
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{d0: d0, d1: d1, r0: r0, r1: r1}
}

// Map resolves a domain value to its range value.
func (s Linear) Map(v float64) float64 {
	if s.d1 == s.d0 {
		return s.r0
	}
	if v < s.d0 {
		v = s.d0
	}
	if v > s.d1 {
		v = s.d1
	}
	t := (v - s.d0) / (s.d1 - s.d0)
	return s.r0 + t*(s.r1-s.r0)
}

// NewRadiusScale builds the node radius scale from the loaded graph: domain
// [0, max collab_count] (or 1 when the graph has at most one distinct value)
// onto [MinRadius, MaxRadius].
func NewRadiusScale(nodes []*model.Node) Linear {
	max := 0
	for _, n := range nodes {
		if n.CollabCount > max {
			max = n.CollabCount
		}
	}
	if max == 0 {
		max = 1
	}
	return NewLinear(0, float64(max), MinRadius, MaxRadius)
}

// NewLinkWidthScale builds the link stroke width scale: domain
// [1, max weight] (or 1) onto [MinLinkWidth, MaxLinkWidth].
func NewLinkWidthScale(links []*model.Link) Linear {
	max := 1.0
	for _, l := range links {
		if l.Weight > max {
			max = l.Weight
		}
	}
	return NewLinear(1, max, MinLinkWidth, MaxLinkWidth)
}

// NodeRadius resolves a node's visual radius through the given scale.
func NodeRadius(s Linear, n *model.Node) float64 {
	return s.Map(float64(n.CollabCount))
}

// LinkWidth resolves a link's stroke width through the given scale.
func LinkWidth(s Linear, l *model.Link) float64 {
	return s.Map(l.Weight)
}
