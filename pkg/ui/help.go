package ui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# nestviz

Explore the collaboration network.

## Mouse

| Input | Action |
|---|---|
| wheel | zoom around the pointer |
| drag background | pan |
| drag node | move the node (pins it while held) |
| hover node | tooltip |
| click node | open detail panel |
| click background | close detail panel |

## Keys

| Key | Action |
|---|---|
| / | search by name |
| d | cycle department filter |
| a | cycle archetype filter |
| c | clear all filters |
| y | copy the selected profile link |
| s | save a snapshot |
| ? | toggle this help |
| esc | dismiss help / panel / filters |
| q | quit |
`

// renderHelp produces the glamour-rendered help overlay. Falls back to the
// raw markdown if rendering fails.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
