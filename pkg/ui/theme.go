package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the explorer's lipgloss styles. Colors adapt to light and dark
// terminal backgrounds; node colors come from the visual encoding instead.
type Theme struct {
	Primary lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor

	Sidebar   lipgloss.Style
	Header    lipgloss.Style
	Muted     lipgloss.Style
	StatusBar lipgloss.Style
	Stale     lipgloss.Style
	Tooltip   lipgloss.Style
	Label     lipgloss.Style
}

// DefaultTheme builds the standard theme.
func DefaultTheme() Theme {
	t := Theme{
		Primary: lipgloss.AdaptiveColor{Light: "#1a1a8c", Dark: "#7d9bff"},
		Subtext: lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"},
		Border:  lipgloss.AdaptiveColor{Light: "#cccccc", Dark: "#444444"},
	}
	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(t.Border).
		PaddingLeft(1)
	t.Header = lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	t.Muted = lipgloss.NewStyle().Foreground(t.Subtext)
	t.StatusBar = lipgloss.NewStyle().Foreground(t.Subtext)
	t.Stale = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#fbbf24"}).Bold(true)
	t.Tooltip = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.Label = lipgloss.NewStyle().Foreground(t.Subtext)
	return t
}
