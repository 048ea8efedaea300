package components

import "testing"

func TestLayoutRow(t *testing.T) {
	widths := LayoutRow(100, 3)
	if len(widths) != 3 {
		t.Fatalf("len = %d, want 3", len(widths))
	}
	sum := 0
	for _, w := range widths {
		sum += w
	}
	if sum != 100 {
		t.Fatalf("sum = %d, want 100", sum)
	}
	// First columns absorb the remainder.
	if widths[0] != 34 || widths[1] != 33 || widths[2] != 33 {
		t.Fatalf("widths = %v, want [34 33 33]", widths)
	}

	if LayoutRow(50, 0) != nil {
		t.Fatal("LayoutRow with zero columns should be nil")
	}
}

func TestSparklineLength(t *testing.T) {
	if got := Sparkline(nil, "#ffffff"); got != "" {
		t.Fatalf("Sparkline(nil) = %q, want empty", got)
	}
	// One block rune per value, ANSI styling aside.
	out := Sparkline([]int{0, 50, 100}, "#ffffff")
	if out == "" {
		t.Fatal("Sparkline returned empty output")
	}
}

func TestLineChartSmallFallsBack(t *testing.T) {
	// Tiny areas degrade to a sparkline rather than a broken axis.
	out := LineChart([]int{10, 90}, 10, 2, "#ffffff")
	if out == "" {
		t.Fatal("LineChart fallback returned empty output")
	}
}
