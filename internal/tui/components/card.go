// Package components provides reusable TUI widgets for the habitgrid app.
package components

import (
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one label/value pair for a metric card row.
type Metric struct {
	Label string
	Value string
	Note  string
}

// LayoutRow distributes totalWidth into n widths that sum to exactly
// totalWidth. First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// MetricCard renders a small bordered card with label, value, and note.
// outerWidth is the total rendered width including border.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	content := labelStyle.Render(m.Label) + "\n" + valueStyle.Render(m.Value)
	if m.Note != "" {
		content += "\n" + noteStyle.Render(m.Note)
	}

	return cardStyle.Render(content)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	rendered := make([]string, len(metrics))
	for i, m := range metrics {
		rendered[i] = MetricCard(m, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// ContentCard renders a bordered content card with an optional title.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Width(contentWidth).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)

	content := ""
	if title != "" {
		content = titleStyle.Render(title) + "\n"
	}
	content += body

	return cardStyle.Render(content)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}
