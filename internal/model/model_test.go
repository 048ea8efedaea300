package model

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	// The wire format keeps the original zero-based month.
	if got := Key(2026, time.January); got != "habits-2026-0" {
		t.Fatalf("Key(2026, January) = %q, want %q", got, "habits-2026-0")
	}
	if got := Key(2026, time.December); got != "habits-2026-11" {
		t.Fatalf("Key(2026, December) = %q, want %q", got, "habits-2026-11")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	snap := MonthSnapshot{
		Habits: []Habit{
			{ID: 101, Name: "Meditation", Color: "#8ecae6"},
			{ID: 102, Name: "Workout", Color: "#219ebc"},
		},
		Data: CompletionMap{
			101: {1: true, 15: true, 3: false},
			102: {2: true},
		},
	}

	raw, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if len(got.Habits) != 2 || got.Habits[0] != snap.Habits[0] || got.Habits[1] != snap.Habits[1] {
		t.Fatalf("habits = %+v, want %+v", got.Habits, snap.Habits)
	}
	if !got.Data.Done(101, 15) || !got.Data.Done(102, 2) {
		t.Fatal("completion entries lost in round trip")
	}
	if got.Data.Done(101, 3) || got.Data.Done(101, 4) {
		t.Fatal("false/absent days must both read as not done")
	}
}

func TestSnapshotWireFormat(t *testing.T) {
	snap := MonthSnapshot{
		Habits: []Habit{{ID: 7, Name: "Read 30 min", Color: "#ffd166"}},
		Data:   CompletionMap{7: {12: true}},
	}

	raw, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	// Integer map keys must serialize as JSON strings.
	var generic map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		t.Fatalf("wire form is not a JSON object: %v", err)
	}
	if _, ok := generic["habits"]; !ok {
		t.Fatal(`wire form missing "habits"`)
	}
	if !strings.Contains(string(generic["data"]), `"7"`) {
		t.Fatalf(`data keys not stringified: %s`, generic["data"])
	}
}

func TestDecodeSnapshotRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		"not json",
		`{"habits": 42}`,
		`{"habits": [{"id": "nope"}]}`,
		"null",
		`{}`,
	} {
		if _, err := DecodeSnapshot(raw); err == nil {
			t.Errorf("DecodeSnapshot(%q) succeeded, want error", raw)
		}
	}
}

func TestDecodeSnapshotMissingData(t *testing.T) {
	snap, err := DecodeSnapshot(`{"habits": []}`)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if snap.Data == nil {
		t.Fatal("decoded snapshot has nil completion map")
	}
}

func TestNewIDMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		if id <= prev {
			t.Fatalf("NewID() = %d, not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestRandomColorFromPalette(t *testing.T) {
	for i := 0; i < 50; i++ {
		c := RandomColor()
		if !slices.Contains(Palette, c) {
			t.Fatalf("RandomColor() = %q, not in palette", c)
		}
	}
}

func TestDefaultHabits(t *testing.T) {
	habits := DefaultHabits()
	if len(habits) != 4 {
		t.Fatalf("len(DefaultHabits()) = %d, want 4", len(habits))
	}

	want := map[string]string{
		"Meditation":  "#8ecae6",
		"Workout":     "#219ebc",
		"Read 30 min": "#ffd166",
		"No sugar":    "#06d6a0",
	}
	seen := map[int64]bool{}
	for _, h := range habits {
		if want[h.Name] != h.Color {
			t.Errorf("habit %q color = %q, want %q", h.Name, h.Color, want[h.Name])
		}
		if seen[h.ID] {
			t.Errorf("duplicate habit id %d", h.ID)
		}
		seen[h.ID] = true
	}
}

func TestClone(t *testing.T) {
	snap := NewMonthSnapshot()
	id := snap.Habits[0].ID
	snap.Data[id][5] = true

	cp := snap.Clone()
	cp.Data[id][5] = false
	cp.Habits[0].Name = "changed"

	if !snap.Data.Done(id, 5) {
		t.Fatal("mutating the clone changed the original data")
	}
	if snap.Habits[0].Name == "changed" {
		t.Fatal("mutating the clone changed the original habits")
	}
}
