package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitgrid/internal/progress"
	"github.com/theirongolddev/habitgrid/internal/tui/components"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	gridCellW = 2  // each day column is two characters wide
	gridNameW = 14 // habit name column
	gridBarW  = 10 // month-percent bar
)

func (a App) renderGridTab(cw int) string {
	t := theme.Active
	snap := a.store.Snapshot()
	year, month := a.store.Year(), a.store.Month()
	days := progress.DaysInMonth(year, month)
	today := a.store.Now()

	elapsed := days
	if today.Year() == year && today.Month() == month {
		elapsed = today.Day()
	}

	wideEnough := cw >= gridNameW+days*gridCellW+gridBarW+8

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	headStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	bandStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceAlt)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	cursorStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString("\n")

	// Weekday letter header, shaded by week band.
	b.WriteString(strings.Repeat(" ", gridNameW+3))
	for day := 1; day <= days; day++ {
		wd := (progress.FirstWeekday(year, month) + day - 1) % 7
		cell := fmt.Sprintf("%-2s", weekdayLetter(wd))
		if progress.WeekBand(year, month, day)%2 == 1 {
			b.WriteString(bandStyle.Render(cell))
		} else {
			b.WriteString(headStyle.Render(cell))
		}
	}
	b.WriteString("\n")

	// Day number header.
	b.WriteString(strings.Repeat(" ", gridNameW+3))
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%-2d", day%10)
		style := headStyle
		if progress.WeekBand(year, month, day)%2 == 1 {
			style = bandStyle
		}
		if day > elapsed {
			style = dimStyle
		}
		b.WriteString(style.Render(cell))
	}
	b.WriteString("\n\n")

	if len(snap.Habits) == 0 {
		b.WriteString(dimStyle.Render("  No habits yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, h := range snap.Habits {
		habitStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(h.Color))

		marker := "  "
		if i == a.row {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Render("▸ ")
		}
		b.WriteString(marker)
		b.WriteString(habitStyle.Render("●"))
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", gridNameW, truncName(h.Name, gridNameW-1))))

		for day := 1; day <= days; day++ {
			done := snap.Data.Done(h.ID, day)

			var cell string
			switch {
			case done:
				cell = "■ "
			case day <= elapsed:
				cell = "· "
			default:
				cell = "  "
			}

			switch {
			case i == a.row && day == a.col+1:
				b.WriteString(cursorStyle.Render(cell))
			case done:
				b.WriteString(habitStyle.Render(cell))
			case progress.WeekBand(year, month, day)%2 == 1:
				b.WriteString(bandStyle.Render(cell))
			default:
				b.WriteString(dimStyle.Render(cell))
			}
		}

		pct := progress.HabitMonthPercent(h.ID, snap.Data, year, month, today)
		b.WriteString(" ")
		if wideEnough {
			b.WriteString(components.PercentBar(pct, h.Color, gridBarW))
		} else {
			b.WriteString(habitStyle.Render(fmt.Sprintf("%3d%%", pct)))
		}
		b.WriteString("\n")
	}

	// Aggregate row: per-day completion share across all habits.
	if len(snap.Habits) > 0 {
		blocks := []rune{'·', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
		aggStyle := lipgloss.NewStyle().Foreground(t.Accent)

		b.WriteString("\n")
		b.WriteString(headStyle.Render(fmt.Sprintf("  %-*s", gridNameW+1, "all habits")))
		for day := 1; day <= days; day++ {
			pct := progress.DailyAggregatePercent(day, snap.Habits, snap.Data)
			idx := pct * (len(blocks) - 1) / 100
			cell := string(blocks[idx]) + " "
			if day > elapsed && pct == 0 {
				b.WriteString(dimStyle.Render("  "))
			} else {
				b.WriteString(aggStyle.Render(cell))
			}
		}
		b.WriteString("\n")

		selPct := progress.DailyAggregatePercent(a.col+1, snap.Habits, snap.Data)
		b.WriteString(dimStyle.Render(fmt.Sprintf("  day %d · %d%% of habits done", a.col+1, selPct)))
		b.WriteString("\n")
	}

	// Transient input / confirmation lines.
	if a.adding {
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Accent).Render("＋ "))
		b.WriteString(a.nameInput.View())
		b.WriteString(dimStyle.Render("   enter to add, esc to cancel"))
		b.WriteString("\n")
	}
	if a.confirmRemove && a.row < len(snap.Habits) {
		warn := lipgloss.NewStyle().Foreground(t.Red).Bold(true)
		b.WriteString("\n  ")
		b.WriteString(warn.Render(fmt.Sprintf("Delete %q and all its entries? (y/n)", snap.Habits[a.row].Name)))
		b.WriteString("\n")
	}

	return b.String()
}

func weekdayLetter(wd int) string {
	letters := []string{"S", "M", "T", "W", "T", "F", "S"}
	if wd >= 0 && wd < 7 {
		return letters[wd]
	}
	return "?"
}

func truncName(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
