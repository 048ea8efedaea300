package cli

import (
	"testing"
	"time"
)

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0); got != "0%" {
		t.Fatalf("FormatPercent(0) = %q", got)
	}
	if got := FormatPercent(100); got != "100%" {
		t.Fatalf("FormatPercent(100) = %q", got)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel(2026, time.August); got != "August 2026" {
		t.Fatalf("MonthLabel = %q, want %q", got, "August 2026")
	}
}

func TestCompletionStrip(t *testing.T) {
	done := map[int]bool{1: true, 3: true}

	got := CompletionStrip(done, 5, 4)
	want := "■·■· "
	if got != want {
		t.Fatalf("CompletionStrip = %q, want %q", got, want)
	}

	// A false entry reads like an absent one.
	done[2] = false
	if CompletionStrip(done, 5, 4) != want {
		t.Fatal("explicit false rendered differently from absent")
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Sun" {
		t.Fatalf("FormatDayOfWeek(0) = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(6); got != "Sat" {
		t.Fatalf("FormatDayOfWeek(6) = %q, want Sat", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Fatalf("FormatDayOfWeek(9) = %q, want ???", got)
	}
}
