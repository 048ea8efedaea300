package progress

import (
	"testing"
	"time"

	"github.com/theirongolddev/habitgrid/internal/model"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.February, 29},
		{2023, time.February, 28},
		{2000, time.February, 29},
		{1900, time.February, 28},
		{2026, time.April, 30},
		{2026, time.August, 31},
		{2026, time.December, 31},
	}
	for _, c := range cases {
		if got := DaysInMonth(c.year, c.month); got != c.want {
			t.Errorf("DaysInMonth(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestFirstWeekday(t *testing.T) {
	// August 1, 2026 is a Saturday.
	if got := FirstWeekday(2026, time.August); got != 6 {
		t.Fatalf("FirstWeekday(2026, August) = %d, want 6", got)
	}
	// February 1, 2026 is a Sunday.
	if got := FirstWeekday(2026, time.February); got != 0 {
		t.Fatalf("FirstWeekday(2026, February) = %d, want 0", got)
	}
}

func TestHabitMonthPercent_CurrentMonth(t *testing.T) {
	const id int64 = 1
	today := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	data := model.CompletionMap{id: {}}
	if got := HabitMonthPercent(id, data, 2026, time.August, today); got != 0 {
		t.Fatalf("percent with zero completions = %d, want 0", got)
	}

	for day := 1; day <= 10; day++ {
		data[id][day] = true
	}
	if got := HabitMonthPercent(id, data, 2026, time.August, today); got != 100 {
		t.Fatalf("percent with all elapsed days done = %d, want 100", got)
	}

	// Entries beyond the elapsed window are ignored for the current month.
	data[id] = map[int]bool{5: true, 20: true}
	if got := HabitMonthPercent(id, data, 2026, time.August, today); got != 10 {
		t.Fatalf("percent with 1 of 10 elapsed days = %d, want 10", got)
	}
}

func TestHabitMonthPercent_OtherMonth(t *testing.T) {
	const id int64 = 1
	today := time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC)

	// June has 30 days; 15 done is 50% regardless of today.
	data := model.CompletionMap{id: {}}
	for day := 1; day <= 15; day++ {
		data[id][day] = true
	}
	if got := HabitMonthPercent(id, data, 2026, time.June, today); got != 50 {
		t.Fatalf("past month percent = %d, want 50", got)
	}
}

func TestHabitMonthPercent_Rounding(t *testing.T) {
	const id int64 = 1
	today := time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC)

	// 1 of 3 elapsed days: 33.33 rounds to 33.
	data := model.CompletionMap{id: {1: true}}
	if got := HabitMonthPercent(id, data, 2026, time.August, today); got != 33 {
		t.Fatalf("percent = %d, want 33", got)
	}

	// 2 of 3: 66.67 rounds to 67.
	data[id][2] = true
	if got := HabitMonthPercent(id, data, 2026, time.August, today); got != 67 {
		t.Fatalf("percent = %d, want 67", got)
	}
}

func TestDailyAggregatePercent(t *testing.T) {
	habits := []model.Habit{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	data := model.CompletionMap{
		1: {12: true},
		3: {12: true},
	}

	if got := DailyAggregatePercent(12, habits, data); got != 50 {
		t.Fatalf("2 of 4 habits done = %d, want 50", got)
	}
	if got := DailyAggregatePercent(13, habits, data); got != 0 {
		t.Fatalf("no habits done = %d, want 0", got)
	}
	if got := DailyAggregatePercent(12, nil, data); got != 0 {
		t.Fatalf("zero habits = %d, want 0", got)
	}
}

func TestWeekBand(t *testing.T) {
	// August 2026 starts on a Saturday (weekday 6): day 1 is band 0,
	// day 2 starts band 1.
	cases := []struct{ day, want int }{
		{1, 0},
		{2, 1},
		{8, 1},
		{9, 2},
		{31, 5},
	}
	for _, c := range cases {
		if got := WeekBand(2026, time.August, c.day); got != c.want {
			t.Errorf("WeekBand(2026, August, %d) = %d, want %d", c.day, got, c.want)
		}
	}
}

func TestDailySeries(t *testing.T) {
	snap := model.MonthSnapshot{
		Habits: []model.Habit{{ID: 1}, {ID: 2}},
		Data: model.CompletionMap{
			1: {1: true, 2: true},
			2: {2: true},
		},
	}

	series := DailySeries(snap, 2026, time.April)
	if len(series) != 30 {
		t.Fatalf("series length = %d, want 30", len(series))
	}
	if series[0] != 50 {
		t.Fatalf("day 1 = %d, want 50", series[0])
	}
	if series[1] != 100 {
		t.Fatalf("day 2 = %d, want 100", series[1])
	}
	if series[2] != 0 {
		t.Fatalf("day 3 = %d, want 0", series[2])
	}
}
