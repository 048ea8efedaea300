// Package progress holds the pure derived-statistics functions: month
// percentages per habit, per-day aggregates across habits, and the
// calendar helpers they depend on. Nothing here mutates state or reads
// ambient time; the reference date is always passed in.
package progress

import (
	"math"
	"time"

	"github.com/theirongolddev/habitgrid/internal/model"
)

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of the 1st of the month, Sunday = 0.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// HabitMonthPercent computes a habit's month-to-date completion rate.
// For the month containing today the denominator is today's day of the
// month; for any other month it is the full day count. A zero
// denominator clamps to 0 rather than dividing.
func HabitMonthPercent(habitID int64, data model.CompletionMap, year int, month time.Month, today time.Time) int {
	elapsed := DaysInMonth(year, month)
	if today.Year() == year && today.Month() == month {
		elapsed = today.Day()
	}
	if elapsed <= 0 {
		return 0
	}

	done := 0
	for day := 1; day <= elapsed; day++ {
		if data.Done(habitID, day) {
			done++
		}
	}
	return percent(done, elapsed)
}

// DailyAggregatePercent computes the share of habits completed on one
// day. Zero habits yields 0.
func DailyAggregatePercent(day int, habits []model.Habit, data model.CompletionMap) int {
	if len(habits) == 0 {
		return 0
	}
	done := 0
	for _, h := range habits {
		if data.Done(h.ID, day) {
			done++
		}
	}
	return percent(done, len(habits))
}

// WeekBand returns the zero-based calendar week a day falls into,
// counting partial first weeks. Used only for shading grid columns.
func WeekBand(year int, month time.Month, day int) int {
	return (FirstWeekday(year, month) + day - 1) / 7
}

// DailySeries returns the aggregate percentage for every day of the
// month, index 0 holding day 1. This is the chart's input.
func DailySeries(snap model.MonthSnapshot, year int, month time.Month) []int {
	days := DaysInMonth(year, month)
	series := make([]int, days)
	for day := 1; day <= days; day++ {
		series[day-1] = DailyAggregatePercent(day, snap.Habits, snap.Data)
	}
	return series
}

func percent(num, den int) int {
	return int(math.Round(float64(num) / float64(den) * 100))
}
