package components

import (
	"fmt"

	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// PercentBar renders a labeled progress bar for a habit's month-to-date
// percentage, filled in the habit's own color.
func PercentBar(pct int, colorHex string, barWidth int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(colorHex),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colorHex)).Bold(true)

	return bar.ViewAs(float64(pct)/100) + " " + pctStyle.Render(fmt.Sprintf("%3d%%", pct))
}
