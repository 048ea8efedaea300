package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/habitgrid/internal/cli"
	"github.com/theirongolddev/habitgrid/internal/progress"
	"github.com/theirongolddev/habitgrid/internal/tui/components"
	"github.com/theirongolddev/habitgrid/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	snap := a.store.Snapshot()
	year, month := a.store.Year(), a.store.Month()
	today := a.store.Now()
	days := progress.DaysInMonth(year, month)
	series := progress.DailySeries(snap, year, month)

	elapsed := days
	if today.Year() == year && today.Month() == month {
		elapsed = today.Day()
	}

	var b strings.Builder

	// Summary cards.
	overall := 0
	for _, h := range snap.Habits {
		overall += progress.HabitMonthPercent(h.ID, snap.Data, year, month, today)
	}
	if len(snap.Habits) > 0 {
		overall /= len(snap.Habits)
	}

	bestDay, bestPct := 0, 0
	for day := 1; day <= elapsed; day++ {
		if series[day-1] > bestPct {
			bestDay, bestPct = day, series[day-1]
		}
	}
	bestLabel := "—"
	if bestDay > 0 {
		bestLabel = fmt.Sprintf("%s %d", month.String()[:3], bestDay)
	}

	todayPct := 0
	todayNote := "not this month"
	if today.Year() == year && today.Month() == month {
		todayPct = progress.DailyAggregatePercent(elapsed, snap.Habits, snap.Data)
		todayNote = fmt.Sprintf("day %d", elapsed)
	}

	cards := []components.Metric{
		{Label: "Month to date", Value: cli.FormatPercent(overall), Note: fmt.Sprintf("%d day window", elapsed)},
		{Label: "Best day", Value: bestLabel, Note: cli.FormatPercent(bestPct)},
		{Label: "Today", Value: cli.FormatPercent(todayPct), Note: todayNote},
		{Label: "Habits", Value: fmt.Sprintf("%d", len(snap.Habits)), Note: "tracked"},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Daily completion-rate line chart, recomputed from the snapshot on
	// every render.
	chartInnerW := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Daily Completion Rate · %s", cli.MonthLabel(year, month)),
		components.LineChart(series, chartInnerW, 10, t.Accent),
		cw,
	))
	b.WriteString("\n")

	// Per-habit month bars.
	var bars strings.Builder
	for _, h := range snap.Habits {
		pct := progress.HabitMonthPercent(h.ID, snap.Data, year, month, today)
		bars.WriteString(fmt.Sprintf("%-*s %s\n",
			gridNameW, truncName(h.Name, gridNameW-1),
			components.PercentBar(pct, h.Color, chartInnerW-gridNameW-7)))
	}
	if len(snap.Habits) == 0 {
		bars.WriteString("No habits tracked this month.")
	}
	b.WriteString(components.ContentCard("Month to Date", strings.TrimRight(bars.String(), "\n"), cw))

	return b.String()
}
