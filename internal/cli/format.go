// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"time"
)

// FormatPercent renders an integer percentage, e.g. 42 -> "42%".
func FormatPercent(pct int) string {
	return strconv.Itoa(pct) + "%"
}

// MonthLabel renders a month heading, e.g. "August 2026".
func MonthLabel(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", month.String(), year)
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday
// number (Sunday = 0).
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}

// CompletionStrip renders one character per day: done, missed, or
// not-yet-elapsed. days is the month length, elapsed how many of those
// days count toward the month-to-date window.
func CompletionStrip(done map[int]bool, days, elapsed int) string {
	buf := make([]rune, days)
	for day := 1; day <= days; day++ {
		switch {
		case done[day]:
			buf[day-1] = '■'
		case day <= elapsed:
			buf[day-1] = '·'
		default:
			buf[day-1] = ' '
		}
	}
	return string(buf)
}
