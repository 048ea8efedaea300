package components

import (
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a notice (usually the last save error, if any) on the right.
func RenderStatusBar(width int, notice string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [space]toggle  [a]dd  [d]elete  [[ ]]month  [?]help  [q]uit"
	right := ""
	if notice != "" {
		right = notice + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}
	bar += right

	return style.Render(bar)
}
