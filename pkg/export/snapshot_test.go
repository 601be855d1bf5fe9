package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/model"
	"github.com/vanderheijden86/nestviz/pkg/scene"
	"github.com/vanderheijden86/nestviz/pkg/sim"
)

func testGraph(t *testing.T) *model.Graph {
	t.Helper()
	nodes := []*model.Node{
		{ID: 1, Name: "Ada Lovelace", Department: "Engineering", Archetype: "Builder", CollabCount: 2},
		{ID: 2, Name: "Grace Hopper", Department: "Research", Archetype: "Researcher", CollabCount: 1},
		{ID: 3, Name: "Alan Turing", Department: "Research", Archetype: "Strategist", CollabCount: 1},
	}
	links := []*model.Link{
		{SourceID: 1, TargetID: 2, Weight: 2, TeamName: "Compilers"},
		{SourceID: 1, TargetID: 3, Weight: 1},
	}
	g, err := model.NewGraph(nodes, links)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	return g
}

func TestResolveFormat_Inference(t *testing.T) {
	cases := []struct {
		path, format string
		wantFormat   string
		wantPath     string
	}{
		{"out.svg", "", "svg", "out.svg"},
		{"out.png", "", "png", "out.png"},
		{"out", "", "svg", "out.svg"},
		{"out.svg", "PNG", "png", "out.svg"},
		{"out.svg", "both", "both", "out.svg"},
	}
	for _, tc := range cases {
		opts := Options{Path: tc.path, Format: tc.format}
		if err := opts.ResolveFormat(); err != nil {
			t.Errorf("ResolveFormat(%q, %q): %v", tc.path, tc.format, err)
			continue
		}
		if opts.Format != tc.wantFormat || opts.Path != tc.wantPath {
			t.Errorf("ResolveFormat(%q, %q) = (%q, %q), want (%q, %q)",
				tc.path, tc.format, opts.Format, opts.Path, tc.wantFormat, tc.wantPath)
		}
	}
}

func TestResolveFormat_Errors(t *testing.T) {
	opts := Options{Path: "out.svg", Format: "gif"}
	if err := opts.ResolveFormat(); err == nil {
		t.Error("expected error for unsupported format")
	}
	opts = Options{Format: "svg"}
	if err := opts.ResolveFormat(); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestSnapshot_SVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.svg")
	err := Snapshot(testGraph(t), sim.DefaultConfig(), Options{Path: path, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "Ada") {
		t.Error("SVG output incomplete")
	}
}

func TestSnapshot_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.png")
	err := Snapshot(testGraph(t), sim.DefaultConfig(), Options{Path: path, Width: 320, Height: 240})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG output is empty")
	}
}

func TestSaveScene_Both(t *testing.T) {
	g := testGraph(t)
	s := scene.Build(g, encode.NewRadiusScale(g.Nodes), encode.NewLinkWidthScale(g.Links))
	base := filepath.Join(t.TempDir(), "snap")
	err := SaveScene(s, Options{Path: base + ".svg", Format: "both", Width: 320, Height: 240})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	for _, ext := range []string{".svg", ".png"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}
}

func TestSnapshot_EmptyGraphPlaceholder(t *testing.T) {
	g, err := model.NewGraph(nil, nil)
	if err != nil {
		t.Fatalf("build graph: %v", err)
	}
	path := filepath.Join(t.TempDir(), "empty.svg")
	if err := Snapshot(g, sim.DefaultConfig(), Options{Path: path, Width: 640, Height: 480}); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), scene.EmptyPlaceholder) {
		t.Error("empty snapshot missing placeholder text")
	}
}

func TestParseSize(t *testing.T) {
	w, h, err := parseSize("1280x800")
	if err != nil || w != 1280 || h != 800 {
		t.Errorf("parseSize = (%d, %d, %v)", w, h, err)
	}
	for _, bad := range []string{"", "1280", "0x100", "ax b"} {
		if _, _, err := parseSize(bad); err == nil {
			t.Errorf("parseSize(%q) should fail", bad)
		}
	}
}
