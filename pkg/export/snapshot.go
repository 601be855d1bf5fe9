// Package export renders layout snapshots to SVG and PNG files, either from
// a live explorer session or headlessly from the command line. Headless
// export runs the simulation to rest first so the snapshot shows a settled
// layout.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/nestviz/pkg/debug"
	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/model"
	"github.com/vanderheijden86/nestviz/pkg/scene"
	"github.com/vanderheijden86/nestviz/pkg/sim"
)

// maxSettleSteps bounds the headless settle loop; the engine normally goes
// idle well before this.
const maxSettleSteps = 2000

// Options controls snapshot export behaviour.
type Options struct {
	Path   string // Output path; format inferred from extension when Format empty
	Format string // "svg", "png", or "both" (case-insensitive). If empty, inferred from Path.
	Width  int    // Canvas width in pixels
	Height int    // Canvas height in pixels
}

// ResolveFormat normalizes the format, inferring it from the path extension
// when unset and defaulting the extension when the path has none.
func (o *Options) ResolveFormat() error {
	format := strings.ToLower(strings.TrimPrefix(o.Format, "."))
	if format == "" {
		switch strings.ToLower(filepath.Ext(o.Path)) {
		case ".svg":
			format = "svg"
		case ".png":
			format = "png"
		default:
			format = "svg" // safe default
			if o.Path != "" && filepath.Ext(o.Path) == "" {
				o.Path = o.Path + ".svg"
			}
		}
	}
	if format != "svg" && format != "png" && format != "both" {
		return fmt.Errorf("unsupported format %q (want svg, png, or both)", format)
	}
	if o.Path == "" {
		return fmt.Errorf("output path is required")
	}
	o.Format = format
	return nil
}

// SaveScene writes an already-built scene per the options. With format
// "both", the SVG and PNG renders run concurrently.
func SaveScene(s *scene.Scene, opts Options) error {
	if err := opts.ResolveFormat(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	switch opts.Format {
	case "svg":
		return saveSVG(s, opts.Path, opts.Width, opts.Height)
	case "png":
		return s.RenderPNG(opts.Path, opts.Width, opts.Height)
	case "both":
		base := strings.TrimSuffix(opts.Path, filepath.Ext(opts.Path))
		var g errgroup.Group
		g.Go(func() error { return saveSVG(s, base+".svg", opts.Width, opts.Height) })
		g.Go(func() error { return s.RenderPNG(base+".png", opts.Width, opts.Height) })
		return g.Wait()
	default:
		return fmt.Errorf("unhandled format %q", opts.Format)
	}
}

func saveSVG(s *scene.Scene, path string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.RenderSVG(f, width, height)
}

// Snapshot settles the graph headlessly and writes the result. The layout
// runs with the same engine configuration the explorer uses.
func Snapshot(g *model.Graph, cfg sim.Config, opts Options) error {
	radius := encode.NewRadiusScale(g.Nodes)
	width := encode.NewLinkWidthScale(g.Links)
	radiusOf := func(n *model.Node) float64 { return encode.NodeRadius(radius, n) }

	start := time.Now()
	engine := sim.New(g, radiusOf, float64(opts.Width)/2, float64(opts.Height)/2, cfg)
	steps := 0
	for steps < maxSettleSteps && engine.Step() {
		steps++
	}
	debug.LogTiming(fmt.Sprintf("export: settle (%d steps)", steps), time.Since(start))

	s := scene.Build(g, radius, width)
	return SaveScene(s, opts)
}
