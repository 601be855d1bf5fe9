package export

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// RunWizard walks the user through snapshot options interactively and
// returns the resolved Options. Defaults come from the caller's config.
func RunWizard(defaults Options) (Options, error) {
	opts := defaults
	if opts.Path == "" {
		opts.Path = "graph.svg"
	}
	format := opts.Format
	if format == "" {
		format = "svg"
	}
	size := fmt.Sprintf("%dx%d", opts.Width, opts.Height)

	form := newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Snapshot format").
				Options(
					huh.NewOption("SVG (vector, scalable)", "svg"),
					huh.NewOption("PNG (raster)", "png"),
					huh.NewOption("Both", "both"),
				).
				Value(&format),
			huh.NewInput().
				Title("Output path").
				Value(&opts.Path).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Canvas size").
				Description("WIDTHxHEIGHT in pixels").
				Value(&size).
				Validate(validateSize),
		),
	)
	if err := form.Run(); err != nil {
		return Options{}, fmt.Errorf("wizard aborted: %w", err)
	}

	opts.Format = format
	opts.Width, opts.Height, _ = parseSize(size)
	if err := opts.ResolveFormat(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func validateSize(s string) error {
	if _, _, err := parseSize(s); err != nil {
		return err
	}
	return nil
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want WIDTHxHEIGHT, e.g. 1280x800")
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("bad width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("bad height %q", parts[1])
	}
	return w, h, nil
}
