package filter

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

func testGraph(t *testing.T) *model.Graph {
	t.Helper()
	nodes := []*model.Node{
		{ID: 1, Name: "Ada Lovelace", Department: "Engineering", Archetype: "Builder"},
		{ID: 2, Name: "Adam West", Department: "Design", Archetype: "Designer"},
		{ID: 3, Name: "Grace Hopper", Department: "Engineering", Archetype: "Researcher"},
		{ID: 4, Name: "Nadav Adar", Department: "Research", Archetype: "Builder"},
	}
	links := []*model.Link{
		{SourceID: 1, TargetID: 2, Weight: 1},
		{SourceID: 1, TargetID: 3, Weight: 2},
		{SourceID: 3, TargetID: 4, Weight: 1},
	}
	g, err := model.NewGraph(nodes, links)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Search: "ada"})
	want := map[int]bool{1: true, 2: true, 3: false, 4: true}
	for _, n := range g.Nodes {
		if r.NodeMatched(n) != want[n.ID] {
			t.Errorf("node %d (%q) matched=%v, want %v", n.ID, n.Name, r.NodeMatched(n), want[n.ID])
		}
	}
	if r.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", r.MatchCount)
	}
}

func TestCriteria_Conjunctive(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Search: "ada", Department: "Engineering"})
	if !r.NodeMatched(g.NodeByID(1)) {
		t.Error("Ada Lovelace should match search+department")
	}
	if r.NodeMatched(g.NodeByID(2)) {
		t.Error("Adam West is in Design, should not match")
	}
	if r.MatchCount != 1 {
		t.Errorf("MatchCount = %d, want 1", r.MatchCount)
	}
}

func TestArchetypeFilter(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Archetype: "Builder"})
	if r.MatchCount != 2 {
		t.Errorf("MatchCount = %d, want 2", r.MatchCount)
	}
	if !r.NodeMatched(g.NodeByID(1)) || !r.NodeMatched(g.NodeByID(4)) {
		t.Error("both Builders should match")
	}
}

func TestClearedState_RestoresBaseline(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{})
	if r.Active() {
		t.Error("zero state should be inactive")
	}
	for _, n := range g.Nodes {
		if r.NodeOpacity(n) != FullOpacity {
			t.Errorf("node %d opacity = %v, want full", n.ID, r.NodeOpacity(n))
		}
	}
	if r.LinkOpacity() != FullOpacity {
		t.Errorf("link opacity = %v, want full", r.LinkOpacity())
	}
}

func TestLinkOpacity_UniformWhileFiltering(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Department: "Engineering"})
	// Links dim as a group while any criterion is active, even the 1-3 link
	// whose endpoints both match.
	if got := r.LinkOpacity(); got != DimmedLinkOpacity {
		t.Errorf("link opacity = %v, want dimmed", got)
	}
}

func TestNoMatches_EverythingDimmed(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Search: "zzz"})
	if r.MatchCount != 0 {
		t.Fatalf("MatchCount = %d, want 0", r.MatchCount)
	}
	for _, n := range g.Nodes {
		if r.NodeOpacity(n) != DimmedOpacity {
			t.Errorf("node %d opacity = %v, want dimmed", n.ID, r.NodeOpacity(n))
		}
	}
}

func TestHighlight_IndependentOfCategoryFilters(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Search: "ada", Department: "Engineering"})
	// Adam West fails the department filter but still carries the search hit.
	if r.NodeMatched(g.NodeByID(2)) {
		t.Error("Adam West should not match the combined criteria")
	}
	if !r.NodeHighlighted(g.NodeByID(2)) {
		t.Error("Adam West should still be highlighted as a search hit")
	}
	if r.NodeHighlighted(g.NodeByID(3)) {
		t.Error("Grace Hopper is not a search hit")
	}
}

func TestHighlight_EmptySearchHighlightsNothing(t *testing.T) {
	g := testGraph(t)
	r := Apply(g, State{Department: "Engineering"})
	for _, n := range g.Nodes {
		if r.NodeHighlighted(n) {
			t.Errorf("node %d highlighted without a search term", n.ID)
		}
	}
}

func TestApply_MatchesAgreeWithState(t *testing.T) {
	departments := []string{"Engineering", "Design", "Research"}
	archetypes := []string{"Builder", "Designer", "Researcher"}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		nodes := make([]*model.Node, n)
		for i := range nodes {
			nodes[i] = &model.Node{
				ID:         i + 1,
				Name:       rapid.StringMatching(`[A-Za-z]{1,8} [A-Za-z]{1,8}`).Draw(t, "name"),
				Department: rapid.SampledFrom(departments).Draw(t, "dep"),
				Archetype:  rapid.SampledFrom(archetypes).Draw(t, "arc"),
			}
		}
		g, err := model.NewGraph(nodes, nil)
		if err != nil {
			t.Fatalf("build graph: %v", err)
		}
		s := State{
			Search:    rapid.SampledFrom([]string{"", "a", "Q", "zz"}).Draw(t, "search"),
			Archetype: rapid.SampledFrom(append([]string{""}, archetypes...)).Draw(t, "farc"),
		}
		r := Apply(g, s)
		count := 0
		for _, nd := range g.Nodes {
			if r.NodeMatched(nd) != s.Matches(nd) {
				t.Fatalf("result disagrees with criteria for node %d", nd.ID)
			}
			if r.NodeMatched(nd) {
				count++
			}
		}
		if count != r.MatchCount {
			t.Fatalf("MatchCount = %d, counted %d", r.MatchCount, count)
		}
	})
}
