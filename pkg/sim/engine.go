// Package sim implements the force-directed layout engine. Four additive
// forces act on the nodes each step: a link force pulling connected nodes
// toward a fixed separation distance, an all-pairs repulsion force, a
// centering force toward the viewport center, and a collision force keyed to
// each node's visual radius.
//
// The engine is single-threaded and cooperative: the host calls Step from its
// animation loop, one step runs to completion before the next is scheduled,
// and the renderer reads positions only between steps. A decaying energy
// value (alpha) cools the simulation to Idle; drags and resizes reheat it.
package sim

import (
	"math"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// State is the engine's lifecycle state. Transitions: load and Reheat move
// the engine to Settling; alpha decaying below the minimum (with a zero
// target) moves it to Idle.
type State int

const (
	Idle State = iota
	Settling
)

func (s State) String() string {
	if s == Settling {
		return "settling"
	}
	return "idle"
}

// Config holds the force and cooling constants.
type Config struct {
	LinkDistance    float64 // target separation for connected nodes
	LinkStrength    float64 // spring stiffness toward LinkDistance
	Repulsion       float64 // all-pairs repulsion strength
	CenterStrength  float64 // pull toward the viewport center
	CollidePadding  float64 // margin added to the visual radius
	CollideStrength float64 // fraction of overlap corrected per step
	VelocityDecay   float64 // velocity retained after each step
	AlphaMin        float64 // below this (with zero target) the engine idles
	AlphaDecay      float64 // per-step interpolation toward the alpha target
}

// DefaultConfig returns the tuning used by the explorer.
func DefaultConfig() Config {
	return Config{
		LinkDistance:    90,
		LinkStrength:    0.05,
		Repulsion:       2500,
		CenterStrength:  0.03,
		CollidePadding:  2,
		CollideStrength: 0.7,
		VelocityDecay:   0.85,
		AlphaMin:        0.001,
		AlphaDecay:      0.028,
	}
}

// Engine drives the simulation for one graph. It owns the nodes' position
// and velocity fields; pin fields are written by the drag gesture and only
// read here.
type Engine struct {
	nodes    []*model.Node
	links    []*model.Link
	radiusOf func(*model.Node) float64

	cfg    Config
	cx, cy float64

	alpha       float64
	alphaTarget float64
	state       State

	onTick func()
}

// initialRadius and goldenAngle seed nodes on a deterministic phyllotaxis
// spiral around the center so layouts are reproducible for a given input
// order.
const (
	initialRadius = 14.0
	goldenAngle   = math.Pi * (3 - 2.2360679774997896) // π(3−√5)
)

// New builds an engine for the graph, seeding initial positions around the
// (cx, cy) center. A zero-node graph yields an engine that is already Idle;
// Step on it is a no-op.
func New(g *model.Graph, radiusOf func(*model.Node) float64, cx, cy float64, cfg Config) *Engine {
	e := &Engine{
		nodes:    g.Nodes,
		links:    g.Links,
		radiusOf: radiusOf,
		cfg:      cfg,
		cx:       cx,
		cy:       cy,
		alpha:    1,
		state:    Settling,
	}
	if len(e.nodes) == 0 {
		e.alpha = 0
		e.state = Idle
		return e
	}
	for i, n := range e.nodes {
		r := initialRadius * math.Sqrt(0.5+float64(i))
		a := float64(i) * goldenAngle
		n.X = cx + r*math.Cos(a)
		n.Y = cy + r*math.Sin(a)
		n.VX = 0
		n.VY = 0
	}
	return e
}

// OnTick registers the callback fired after every completed step. The
// renderer uses it to copy fresh positions into the scene.
func (e *Engine) OnTick(fn func()) { e.onTick = fn }

// State returns the current lifecycle state.
func (e *Engine) State() State { return e.state }

// Alpha returns the current energy value.
func (e *Engine) Alpha() float64 { return e.alpha }

// AlphaTarget returns the current decay target.
func (e *Engine) AlphaTarget() float64 { return e.alphaTarget }

// SetCenter retargets the centering force. Used by the viewport manager on
// resize; callers pair it with Reheat so the layout re-settles.
func (e *Engine) SetCenter(cx, cy float64) {
	e.cx = cx
	e.cy = cy
}

// Reheat raises the energy to at least alpha and resumes settling. A no-op
// on an empty graph.
func (e *Engine) Reheat(alpha float64) {
	if len(e.nodes) == 0 {
		return
	}
	if alpha > e.alpha {
		e.alpha = alpha
	}
	e.state = Settling
}

// SetAlphaTarget sets the decay target. A drag start raises it above zero so
// the simulation keeps adjusting under the pointer; drag end restores it to
// zero so the simulation cools naturally.
func (e *Engine) SetAlphaTarget(t float64) {
	e.alphaTarget = t
	if t > 0 && len(e.nodes) > 0 {
		e.state = Settling
	}
}

// Step advances the simulation by one tick: decay alpha, apply forces,
// integrate, fire the tick callback. Returns false when the engine is Idle
// and did no work.
func (e *Engine) Step() bool {
	if e.state == Idle {
		return false
	}

	e.alpha += (e.alphaTarget - e.alpha) * e.cfg.AlphaDecay
	if e.alpha < e.cfg.AlphaMin && e.alphaTarget < e.cfg.AlphaMin {
		e.alpha = 0
		e.state = Idle
		return false
	}

	e.applyRepulsion()
	e.applyLinks()
	e.applyCentering()
	e.integrate()
	e.applyCollisions()

	if e.onTick != nil {
		e.onTick()
	}
	return true
}

func (e *Engine) applyRepulsion() {
	for i := range e.nodes {
		for j := i + 1; j < len(e.nodes); j++ {
			a, b := e.nodes[i], e.nodes[j]
			dx := b.X - a.X
			dy := b.Y - a.Y
			dist2 := dx*dx + dy*dy + 0.01
			f := e.cfg.Repulsion / dist2 * e.alpha
			inv := 1.0 / math.Sqrt(dist2)
			fx := f * dx * inv
			fy := f * dy * inv
			a.VX -= fx
			a.VY -= fy
			b.VX += fx
			b.VY += fy
		}
	}
}

func (e *Engine) applyLinks() {
	for _, l := range e.links {
		s, t := l.Source, l.Target
		dx := t.X - s.X
		dy := t.Y - s.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist == 0 {
			continue
		}
		// Target distance is a fixed constant, not derived from weight.
		f := e.cfg.LinkStrength * (dist - e.cfg.LinkDistance) * e.alpha
		fx := f * dx / dist
		fy := f * dy / dist
		s.VX += fx
		s.VY += fy
		t.VX -= fx
		t.VY -= fy
	}
}

func (e *Engine) applyCentering() {
	for _, n := range e.nodes {
		n.VX -= (n.X - e.cx) * e.cfg.CenterStrength * e.alpha
		n.VY -= (n.Y - e.cy) * e.cfg.CenterStrength * e.alpha
	}
}

// integrate folds accumulated velocity into position. A pinned node's
// position is fixed input for the step: it snaps to (FX, FY) with zero
// velocity while neighbors and collisions still react to it.
func (e *Engine) integrate() {
	for _, n := range e.nodes {
		if n.Pinned() {
			n.X = *n.FX
			n.Y = *n.FY
			n.VX = 0
			n.VY = 0
			continue
		}
		n.VX *= e.cfg.VelocityDecay
		n.VY *= e.cfg.VelocityDecay
		n.X += n.VX
		n.Y += n.VY
	}
}

// applyCollisions separates overlapping pairs after integration. Collision
// radius is the visual radius plus a small fixed margin; the correction is
// split between both nodes unless one is pinned.
func (e *Engine) applyCollisions() {
	for i := range e.nodes {
		for j := i + 1; j < len(e.nodes); j++ {
			a, b := e.nodes[i], e.nodes[j]
			ra := e.radiusOf(a) + e.cfg.CollidePadding
			rb := e.radiusOf(b) + e.cfg.CollidePadding
			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Sqrt(dx*dx + dy*dy)
			minDist := ra + rb
			if dist >= minDist {
				continue
			}
			if dist == 0 {
				dist = 0.01
				dx = 0.01
			}
			overlap := (minDist - dist) / dist * e.cfg.CollideStrength
			sx := dx * overlap
			sy := dy * overlap
			switch {
			case a.Pinned() && b.Pinned():
				// Both fixed; leave them.
			case a.Pinned():
				b.X += sx
				b.Y += sy
			case b.Pinned():
				a.X -= sx
				a.Y -= sy
			default:
				a.X -= sx / 2
				a.Y -= sy / 2
				b.X += sx / 2
				b.Y += sy / 2
			}
		}
	}
}
