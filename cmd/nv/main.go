package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/nestviz/internal/datasource"
	"github.com/vanderheijden86/nestviz/pkg/config"
	"github.com/vanderheijden86/nestviz/pkg/export"
	"github.com/vanderheijden86/nestviz/pkg/sim"
	"github.com/vanderheijden86/nestviz/pkg/ui"
	"github.com/vanderheijden86/nestviz/pkg/version"
)

func main() {
	urlFlag := flag.String("url", "", "Graph JSON endpoint URL")
	fileFlag := flag.String("file", "", "Local graph JSON file")
	dbFlag := flag.String("db", "", "SQLite database path")
	snapshotFlag := flag.String("snapshot", "", "Write a snapshot to this path and exit (no TUI)")
	formatFlag := flag.String("format", "", "Snapshot format: svg, png, or both (default: inferred from path)")
	wizardFlag := flag.Bool("wizard", false, "Configure the snapshot interactively")
	help := flag.Bool("help", false, "Show help")
	versionFlag := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		fmt.Println("Usage: nv [options]")
		fmt.Println("\nAn interactive viewer for collaboration networks.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("nv %s\n", version.Version)
		os.Exit(0)
	}

	appCfg, cfgErr := config.Load()
	if cfgErr != nil {
		// Non-fatal: continue without config
		appCfg = config.DefaultConfig()
	}

	// Flags override the configured source defaults.
	url, file, db := appCfg.Source.URL, appCfg.Source.File, appCfg.Source.DB
	if *urlFlag != "" || *fileFlag != "" || *dbFlag != "" {
		url, file, db = *urlFlag, *fileFlag, *dbFlag
	}

	src, err := datasource.Select(url, file, db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	g, err := datasource.Load(context.Background(), src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading graph: %v\n", err)
		os.Exit(1)
	}

	simCfg := appCfg.Physics.Apply(sim.DefaultConfig())

	// Headless snapshot modes exit without starting the TUI.
	if *snapshotFlag != "" || *wizardFlag {
		opts := export.Options{
			Path:   *snapshotFlag,
			Format: *formatFlag,
			Width:  appCfg.Export.Width,
			Height: appCfg.Export.Height,
		}
		if *wizardFlag {
			opts, err = export.RunWizard(opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if err := export.Snapshot(g, simCfg, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", opts.Path)
		os.Exit(0)
	}

	watcher := datasource.WatchForStaleness(src, nil)
	defer watcher.Close()

	m := ui.New(g, appCfg, src, watcher.Stale)
	if err := runTUIProgram(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func runTUIProgram(m ui.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithoutSignalHandler(),
	)

	runDone := make(chan struct{})
	defer close(runDone)

	// Graceful shutdown on SIGINT/SIGTERM.
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-runDone:
			return
		case <-sigCh:
		}

		p.Quit()

		select {
		case <-runDone:
			return
		case <-sigCh:
		case <-time.After(5 * time.Second):
		}

		p.Kill()
	}()

	// Optional auto-quit for automated tests: set NESTVIZ_TUI_AUTOCLOSE_MS.
	if v := os.Getenv("NESTVIZ_TUI_AUTOCLOSE_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			go func() {
				timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
				defer timer.Stop()

				select {
				case <-runDone:
					return
				case <-timer.C:
				}

				p.Quit()

				select {
				case <-runDone:
					return
				case <-time.After(2 * time.Second):
				}

				p.Kill()
			}()
		}
	}

	_, err := p.Run()
	if err != nil && (errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted)) {
		return nil
	}
	return err
}
