package components

import (
	"strings"

	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Grid", Key: 'g'},
	{Name: "Trends", Key: 'r'},
	{Name: "Settings", Key: 'x'},
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var parts []string
	for i, tab := range Tabs {
		if i == activeIdx {
			parts = append(parts, activeStyle.Render(tab.Name))
			continue
		}
		parts = append(parts, inactiveStyle.Render(tab.Name)+
			dimStyle.Render("[")+keyStyle.Render(string(tab.Key))+dimStyle.Render("]"))
	}

	bar := " " + strings.Join(parts, "  ")
	return lipgloss.NewStyle().Width(width).Render(bar)
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
