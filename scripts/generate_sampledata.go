//go:build ignore

// generate_sampledata.go creates sample collaboration networks for demos and
// benchmarking.
// Usage: go run scripts/generate_sampledata.go
//
// Creates:
//   tests/testdata/sample/small.json   (30 people)
//   tests/testdata/sample/medium.json  (150 people)
//   tests/testdata/sample/large.json   (600 people)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/nestviz/pkg/testutil"
)

type datasetSpec struct {
	name    string
	size    int
	density float64
}

var datasets = []datasetSpec{
	{"small", 30, 0.15},
	{"medium", 150, 0.04},
	{"large", 600, 0.01},
}

func main() {
	outputDir := filepath.Join("tests", "testdata", "sample")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, ds := range datasets {
		fmt.Printf("Generating %s network (%d people)...\n", ds.name, ds.size)

		g, err := testutil.GenerateGraph(testutil.GeneratorConfig{
			Seed:        int64(ds.size), // reproducible per size
			Nodes:       ds.size,
			EdgeDensity: ds.density,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate %s: %v\n", ds.name, err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal %s: %v\n", ds.name, err)
			os.Exit(1)
		}

		path := filepath.Join(outputDir, ds.name+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("  wrote %s (%d links)\n", path, len(g.Links))
	}
}
