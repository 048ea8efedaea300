package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MonthSnapshot is the full persisted state for one calendar month:
// the ordered habit list plus its completion data. Each (year, month)
// pair owns an independent snapshot.
type MonthSnapshot struct {
	Habits []Habit       `json:"habits"`
	Data   CompletionMap `json:"data"`
}

// ErrBadSnapshot marks a stored value that is not a usable snapshot.
// Callers treat it the same as an absent key.
var ErrBadSnapshot = errors.New("stored snapshot unreadable")

// Key returns the storage key for a month: habits-{year}-{month} with a
// zero-based month (0-11), matching the original on-disk format.
func Key(year int, month time.Month) string {
	return fmt.Sprintf("habits-%d-%d", year, int(month)-1)
}

// NewMonthSnapshot seeds a snapshot with the default habit set and an
// empty completion map for each habit.
func NewMonthSnapshot() MonthSnapshot {
	habits := DefaultHabits()
	data := make(CompletionMap, len(habits))
	for _, h := range habits {
		data[h.ID] = make(map[int]bool)
	}
	return MonthSnapshot{Habits: habits, Data: data}
}

// Encode serializes the snapshot to its JSON wire form.
func (s MonthSnapshot) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(b), nil
}

// DecodeSnapshot parses a stored value. Malformed JSON or a value that
// doesn't carry a habit list comes back as ErrBadSnapshot so the caller
// can fall back to a fresh default snapshot.
func DecodeSnapshot(raw string) (MonthSnapshot, error) {
	var s MonthSnapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return MonthSnapshot{}, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if s.Habits == nil {
		return MonthSnapshot{}, fmt.Errorf("%w: missing habit list", ErrBadSnapshot)
	}
	if s.Data == nil {
		s.Data = make(CompletionMap)
	}
	return s, nil
}

// Clone returns a deep copy. Views render from copies so an in-flight
// mutation never shows through a held reference.
func (s MonthSnapshot) Clone() MonthSnapshot {
	cp := MonthSnapshot{
		Habits: make([]Habit, len(s.Habits)),
		Data:   make(CompletionMap, len(s.Data)),
	}
	copy(cp.Habits, s.Habits)
	for id, days := range s.Data {
		inner := make(map[int]bool, len(days))
		for d, v := range days {
			inner[d] = v
		}
		cp.Data[id] = inner
	}
	return cp
}
