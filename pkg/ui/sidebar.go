package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/stat"

	"github.com/vanderheijden86/nestviz/pkg/encode"
	"github.com/vanderheijden86/nestviz/pkg/model"
	"github.com/vanderheijden86/nestviz/pkg/viz"
)

// renderSidebar draws the right-hand panel: legend, active filters, network
// stats, and the detail panel when a node is selected.
func (m Model) renderSidebar(rows int) string {
	innerW := sidebarWidth - 3 // border + padding

	var b strings.Builder
	b.WriteString(m.theme.Header.Render("nestviz"))
	b.WriteString("\n\n")

	if m.panel.IsOpen() {
		b.WriteString(m.renderDetail(innerW))
	} else {
		b.WriteString(m.renderLegend())
		b.WriteString("\n")
		b.WriteString(m.renderFilters(innerW))
		b.WriteString("\n")
		b.WriteString(m.renderStats())
	}

	content := b.String()
	return m.theme.Sidebar.Width(sidebarWidth - 1).Height(rows).Render(content)
}

func (m Model) renderLegend() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Archetypes"))
	b.WriteByte('\n')
	for _, e := range m.sc.Legend {
		dot := lipgloss.NewStyle().
			Foreground(lipgloss.Color(encode.CSS(e.Color))).
			Render("●")
		b.WriteString(fmt.Sprintf("%s %s\n", dot, e.Label))
	}
	return b.String()
}

func (m Model) renderFilters(innerW int) string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Filters"))
	b.WriteByte('\n')

	search := m.search.Value()
	if m.searching {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	} else if search != "" {
		b.WriteString(fmt.Sprintf("search: %s\n", truncate(search, innerW-8)))
	} else {
		b.WriteString(m.theme.Muted.Render("search: (press /)"))
		b.WriteByte('\n')
	}

	dep := m.fstate.Department
	if dep == "" {
		dep = "all"
	}
	arc := m.fstate.Archetype
	if arc == "" {
		arc = "all"
	}
	b.WriteString(fmt.Sprintf("dept (d): %s\n", truncate(dep, innerW-10)))
	b.WriteString(fmt.Sprintf("type (a): %s\n", truncate(arc, innerW-10)))

	if m.fstate.Active() {
		b.WriteString(fmt.Sprintf("%d of %d match\n", m.fres.MatchCount, len(m.graph.Nodes)))
	}
	return b.String()
}

// renderStats summarizes the network with simple moments over the
// collaboration counts and link weights.
func (m Model) renderStats() string {
	var b strings.Builder
	b.WriteString(m.theme.Header.Render("Network"))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("people: %d\n", len(m.graph.Nodes)))
	b.WriteString(fmt.Sprintf("links:  %d\n", len(m.graph.Links)))

	if len(m.graph.Nodes) > 0 {
		collabs := make([]float64, len(m.graph.Nodes))
		for i, n := range m.graph.Nodes {
			collabs[i] = float64(n.CollabCount)
		}
		mean, std := stat.MeanStdDev(collabs, nil)
		if len(collabs) < 2 {
			std = 0
		}
		b.WriteString(fmt.Sprintf("collabs: %.1f ± %.1f\n", mean, std))
	}
	if len(m.graph.Links) > 0 {
		weights := make([]float64, len(m.graph.Links))
		for i, l := range m.graph.Links {
			weights[i] = l.Weight
		}
		b.WriteString(fmt.Sprintf("weight:  %.1f avg\n", stat.Mean(weights, nil)))
	}
	return b.String()
}

// renderDetail fills the sidebar with the selected node's full profile.
func (m Model) renderDetail(innerW int) string {
	n := m.panel.Node()
	var b strings.Builder
	b.WriteString(m.theme.Header.Render(truncate(n.Name, innerW)))
	b.WriteByte('\n')

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color(encode.CSS(encode.ArchetypeColor(n.Archetype)))).
		Bold(true)
	archetype := n.Archetype
	if archetype == "" {
		archetype = model.ArchetypeUnknown
	}
	b.WriteString(badge.Render("● " + archetype))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("%s\n\n", truncate(n.Department, innerW)))

	b.WriteString(fmt.Sprintf("capabilities (%d):\n", n.CapabilityCount))
	if len(n.Capabilities) == 0 {
		b.WriteString(m.theme.Muted.Render("  none listed"))
		b.WriteByte('\n')
	}
	for _, c := range n.Capabilities {
		b.WriteString(fmt.Sprintf("  %s\n", truncate(c, innerW-2)))
	}
	if n.CapabilityCount > len(n.Capabilities) {
		b.WriteString(m.theme.Muted.Render(
			fmt.Sprintf("  +%d more", n.CapabilityCount-len(n.Capabilities))))
		b.WriteByte('\n')
	}

	b.WriteString(fmt.Sprintf("\ncollaborations: %d\n", n.CollabCount))
	if teams := viz.SharedTeams(m.graph, n); len(teams) > 0 {
		b.WriteString("teams:\n")
		for _, t := range teams {
			b.WriteString(fmt.Sprintf("  %s\n", truncate(t, innerW-2)))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render(m.panel.ProfilePath() + "  (y to copy)"))
	b.WriteByte('\n')
	b.WriteString(m.theme.Muted.Render("esc to close"))
	return b.String()
}

func (m Model) renderStatusBar() string {
	var parts []string
	parts = append(parts, m.source.String())
	parts = append(parts, fmt.Sprintf("sim: %s", m.engine.State()))
	parts = append(parts, fmt.Sprintf("zoom: %.1fx", m.transform.Scale))
	if m.status != "" {
		parts = append(parts, m.status)
	}
	line := m.theme.StatusBar.Render(strings.Join(parts, "  |  "))
	if m.staleFn() {
		line += "  " + m.theme.Stale.Render("data changed on disk, restart to reload")
	}
	return line
}

// joinHorizontal places the sidebar to the right of the canvas.
func joinHorizontal(canvas, sidebar string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, canvas, sidebar)
}

// truncate shortens a string to the given display width, rune-aware.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}
