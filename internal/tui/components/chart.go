package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from percentage values (0-100).
func Sparkline(values []int, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := v * (len(blocks) - 1) / 100
		if idx < 0 {
			idx = 0
		}
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// LineChart plots a percentage series (0-100, one value per day) as a
// line with a fixed y-axis. Points land on their value's row; vertical
// connector segments bridge the gap to the previous day's point. Falls
// back to a sparkline when the area is too small.
func LineChart(values []int, width, height int, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	if width < 20 || height < 4 {
		return Sparkline(values, color)
	}

	t := theme.Active

	const yLabelW = 4
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	pointStyle := lipgloss.NewStyle().Foreground(color)
	lineStyle := lipgloss.NewStyle().Foreground(color)

	chartW := width - yLabelW - 1
	n := len(values)

	// One column per value plus a gap where room allows.
	step := 1
	if n*2-1 <= chartW {
		step = 2
	}
	axisLen := (n-1)*step + 1
	if axisLen > chartW {
		axisLen = chartW
	}

	// Row index per value, 0 = bottom row.
	rows := make([]int, n)
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		rows[i] = v * (height - 1) / 100
	}

	// Y tick labels: 100 at the top, 50 midway.
	tickRows := map[int]string{
		height - 1: "100",
		(height - 1) / 2: "50",
	}

	var b strings.Builder
	for row := height - 1; row >= 0; row-- {
		label := tickRows[row]
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		line := make([]byte, 0, axisLen)
		styled := make([]bool, 0, axisLen)
		col := 0
		for i := 0; i < n && col < chartW; i++ {
			if i > 0 && step == 2 {
				// Gap column: draw a connector when the line crosses it.
				lo, hi := order(rows[i-1], rows[i])
				if row > lo && row < hi {
					line = append(line, '|')
					styled = append(styled, true)
				} else if rows[i-1] == rows[i] && rows[i] == row {
					line = append(line, '-')
					styled = append(styled, true)
				} else {
					line = append(line, ' ')
					styled = append(styled, false)
				}
				col++
				if col >= chartW {
					break
				}
			}
			switch {
			case rows[i] == row:
				line = append(line, '*')
				styled = append(styled, true)
			case i > 0 && betweenExclusive(row, rows[i-1], rows[i]):
				line = append(line, '|')
				styled = append(styled, true)
			default:
				line = append(line, ' ')
				styled = append(styled, false)
			}
			col++
		}

		// Render contiguous runs so styling doesn't explode per-char.
		b.WriteString(renderRuns(line, styled, pointStyle, lineStyle))
		b.WriteString("\n")
	}

	// X axis with day labels every 5 days.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	labels := make([]byte, axisLen)
	for i := range labels {
		labels[i] = ' '
	}
	for i := 0; i < n; i++ {
		day := i + 1
		if day != 1 && day%5 != 0 {
			continue
		}
		pos := i * step
		lbl := strconv.Itoa(day)
		if pos+len(lbl) > axisLen {
			continue
		}
		copy(labels[pos:], lbl)
	}
	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(labels), " ")))

	return b.String()
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func betweenExclusive(v, a, b int) bool {
	lo, hi := order(a, b)
	return v > lo && v < hi
}

func renderRuns(line []byte, styled []bool, pointStyle, lineStyle lipgloss.Style) string {
	var b strings.Builder
	i := 0
	for i < len(line) {
		j := i
		for j < len(line) && styled[j] == styled[i] {
			j++
		}
		run := string(line[i:j])
		if styled[i] {
			if strings.ContainsRune(run, '*') {
				b.WriteString(pointStyle.Render(run))
			} else {
				b.WriteString(lineStyle.Render(run))
			}
		} else {
			b.WriteString(run)
		}
		i = j
	}
	return b.String()
}
