package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vanderheijden86/nestviz/pkg/testutil"
)

func TestSnapshot_SVGFromFile(t *testing.T) {
	dir := t.TempDir()
	graph := writeGraphFile(t, dir, testutil.GeneratorConfig{Seed: 1, Nodes: 25, EdgeDensity: 0.12})
	out := filepath.Join(dir, "network.svg")

	stdout, err := runNv(t, dir, "--file", graph, "--snapshot", out)
	if err != nil {
		t.Fatalf("snapshot failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "Wrote") {
		t.Errorf("expected confirmation output, got %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	svg := string(data)
	for _, want := range []string{"<svg", "<circle", "<line", "Archetypes"} {
		if !strings.Contains(svg, want) {
			t.Errorf("snapshot missing %q", want)
		}
	}
}

func TestSnapshot_BothFormats(t *testing.T) {
	dir := t.TempDir()
	graph := writeGraphFile(t, dir, testutil.GeneratorConfig{Seed: 2, Nodes: 15, EdgeDensity: 0.2})
	out := filepath.Join(dir, "network")

	if stdout, err := runNv(t, dir, "--file", graph, "--snapshot", out, "--format", "both"); err != nil {
		t.Fatalf("snapshot failed: %v\n%s", err, stdout)
	}

	for _, p := range []string{out + ".svg", out + ".png"} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("missing output %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestSnapshot_StarTopology(t *testing.T) {
	dir := t.TempDir()
	g, err := testutil.StarGraph(12)
	if err != nil {
		t.Fatalf("star: %v", err)
	}
	path := filepath.Join(dir, "star.json")
	writeJSON(t, path, g)
	out := filepath.Join(dir, "star.png")

	if stdout, err := runNv(t, dir, "--file", path, "--snapshot", out); err != nil {
		t.Fatalf("snapshot failed: %v\n%s", err, stdout)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("missing output: %v", err)
	}
}

func TestSnapshot_MissingFileFails(t *testing.T) {
	dir := t.TempDir()
	stdout, err := runNv(t, dir, "--file", filepath.Join(dir, "nope.json"), "--snapshot", filepath.Join(dir, "out.svg"))
	if err == nil {
		t.Fatalf("expected failure, got output %q", stdout)
	}
	if !strings.Contains(stdout, "Error loading graph") {
		t.Errorf("unexpected error output %q", stdout)
	}
}
