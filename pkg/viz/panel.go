package viz

import (
	"fmt"

	"github.com/vanderheijden86/nestviz/pkg/model"
)

// Panel is the single detail panel. Opening a node replaces whatever was
// shown before; at most one panel exists at a time.
type Panel struct {
	node *model.Node
}

// Open shows the panel for a node, replacing any previous content.
func (p *Panel) Open(n *model.Node) {
	p.node = n
}

// Close dismisses the panel. Safe to call when already closed.
func (p *Panel) Close() {
	p.node = nil
}

// Node returns the displayed node, or nil when the panel is closed.
func (p *Panel) Node() *model.Node { return p.node }

// IsOpen reports whether the panel is showing.
func (p *Panel) IsOpen() bool { return p.node != nil }

// ProfilePath returns the outbound profile reference for the displayed node.
// It is a navigation target (copied to the clipboard in the TUI), never
// fetched.
func (p *Panel) ProfilePath() string {
	if p.node == nil {
		return ""
	}
	return fmt.Sprintf("/profile/%d", p.node.ID)
}

// SharedTeams lists the team names on the node's links, deduplicated in
// first-seen order, for the panel's shared-team section.
func SharedTeams(g *model.Graph, n *model.Node) []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range g.Links {
		if l.Source != n && l.Target != n {
			continue
		}
		if l.TeamName == "" || seen[l.TeamName] {
			continue
		}
		seen[l.TeamName] = true
		out = append(out, l.TeamName)
	}
	return out
}
