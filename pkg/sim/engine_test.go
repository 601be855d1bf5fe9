package sim

import (
	"math"
	"testing"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

func testGraph(t *testing.T) *model.Graph {
	t.Helper()
	nodes := []*model.Node{
		{ID: 1, Name: "Ada", CollabCount: 3},
		{ID: 2, Name: "Grace", CollabCount: 1},
		{ID: 3, Name: "Katherine", CollabCount: 2},
		{ID: 4, Name: "Margaret", CollabCount: 0},
	}
	links := []*model.Link{
		{SourceID: 1, TargetID: 2, Weight: 2},
		{SourceID: 2, TargetID: 3, Weight: 1},
		{SourceID: 1, TargetID: 3, Weight: 4},
	}
	g, err := model.NewGraph(nodes, links)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func flatRadius(*model.Node) float64 { return 10 }

func TestNew_SeedsDistinctPositions(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	if e.State() != Settling {
		t.Fatalf("state = %v, want Settling", e.State())
	}
	seen := map[[2]float64]bool{}
	for _, n := range g.Nodes {
		p := [2]float64{n.X, n.Y}
		if seen[p] {
			t.Fatalf("duplicate seed position %v", p)
		}
		seen[p] = true
	}
}

func TestNew_EmptyGraphIsIdle(t *testing.T) {
	g, err := model.NewGraph(nil, nil)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	if e.State() != Idle {
		t.Fatalf("state = %v, want Idle", e.State())
	}
	if e.Step() {
		t.Error("Step on empty graph should report no work")
	}
	e.Reheat(1)
	if e.State() != Idle {
		t.Error("Reheat on empty graph should stay Idle")
	}
}

func TestStep_CoolsToIdle(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	for i := 0; i < 2000 && e.Step(); i++ {
	}
	if e.State() != Idle {
		t.Fatalf("engine never reached Idle, alpha=%v", e.Alpha())
	}
	if e.Alpha() != 0 {
		t.Errorf("idle alpha = %v, want 0", e.Alpha())
	}
}

func TestStep_FiresTickCallback(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	ticks := 0
	e.OnTick(func() { ticks++ })
	e.Step()
	e.Step()
	if ticks != 2 {
		t.Errorf("tick callback fired %d times, want 2", ticks)
	}
}

func TestStep_PinnedNodeStaysPut(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	n := g.Nodes[0]
	n.Pin(123, 456)
	for i := 0; i < 50; i++ {
		e.Step()
	}
	if n.X != 123 || n.Y != 456 {
		t.Errorf("pinned node moved to (%v, %v)", n.X, n.Y)
	}
	if n.VX != 0 || n.VY != 0 {
		t.Errorf("pinned node has velocity (%v, %v)", n.VX, n.VY)
	}
}

func TestReheat_ResumesSettling(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	for e.Step() {
	}
	if e.State() != Idle {
		t.Fatal("engine should be idle before reheat")
	}
	e.Reheat(0.5)
	if e.State() != Settling {
		t.Fatal("reheat did not resume settling")
	}
	if e.Alpha() != 0.5 {
		t.Errorf("alpha = %v, want 0.5", e.Alpha())
	}
	if !e.Step() {
		t.Error("Step after reheat should do work")
	}
}

func TestReheat_NeverLowersAlpha(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	e.Reheat(0.3)
	if e.Alpha() != 1 {
		t.Errorf("alpha lowered to %v by reheat", e.Alpha())
	}
}

func TestSetAlphaTarget_KeepsSimulationWarm(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	e.SetAlphaTarget(0.3)
	for i := 0; i < 2000; i++ {
		if !e.Step() {
			t.Fatalf("engine went idle at step %d with nonzero target", i)
		}
	}
	if e.Alpha() < 0.2 {
		t.Errorf("alpha decayed to %v despite target 0.3", e.Alpha())
	}
	e.SetAlphaTarget(0)
	for i := 0; i < 2000 && e.Step(); i++ {
	}
	if e.State() != Idle {
		t.Error("engine did not cool after target reset to zero")
	}
}

func TestStep_CollisionsSeparateNodes(t *testing.T) {
	g := testGraph(t)
	cfg := DefaultConfig()
	e := New(g, flatRadius, 400, 300, cfg)
	for e.Step() {
	}
	minDist := 2 * (flatRadius(nil) + cfg.CollidePadding)
	for i := range g.Nodes {
		for j := i + 1; j < len(g.Nodes); j++ {
			a, b := g.Nodes[i], g.Nodes[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d < minDist-1e-6 {
				t.Errorf("nodes %d and %d overlap: dist %v < %v", a.ID, b.ID, d, minDist)
			}
		}
	}
}

func TestSetCenter_PullsLayoutTowardNewCenter(t *testing.T) {
	g := testGraph(t)
	e := New(g, flatRadius, 400, 300, DefaultConfig())
	for e.Step() {
	}
	e.SetCenter(1000, 1000)
	e.Reheat(1)
	for e.Step() {
	}
	var mx, my float64
	for _, n := range g.Nodes {
		mx += n.X
		my += n.Y
	}
	mx /= float64(len(g.Nodes))
	my /= float64(len(g.Nodes))
	if math.Hypot(mx-1000, my-1000) > 200 {
		t.Errorf("layout centroid (%v, %v) far from new center", mx, my)
	}
}
