// Package habit implements the habit store: the single owner of the
// active month's snapshot. All mutations write the full snapshot back
// to storage synchronously, so storage always reflects the last user
// action.
package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/habitgrid/internal/model"
	"github.com/theirongolddev/habitgrid/internal/store"
)

// ErrEmptyName rejects habits with blank names, the one validation rule
// in the system.
var ErrEmptyName = errors.New("habit name must not be empty")

// Store holds the active (year, month) and its snapshot. It is not safe
// for concurrent use; the TUI and CLI both drive it from a single
// goroutine.
type Store struct {
	storage store.Storage
	now     func() time.Time

	year  int
	month time.Month
	snap  model.MonthSnapshot
}

// New creates a store over the given storage. now supplies the
// reference date for month-to-date math; pass time.Now outside tests.
func New(storage store.Storage, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{storage: storage, now: now}
}

// Year returns the active year.
func (s *Store) Year() int { return s.year }

// Month returns the active month.
func (s *Store) Month() time.Month { return s.month }

// Now returns the store's reference date.
func (s *Store) Now() time.Time { return s.now() }

// Snapshot returns a copy of the active month's state.
func (s *Store) Snapshot() model.MonthSnapshot { return s.snap.Clone() }

// LoadMonth makes (year, month) the active month. A missing or
// unreadable stored value seeds the default snapshot and writes it
// through immediately; only storage I/O errors surface.
func (s *Store) LoadMonth(year int, month time.Month) error {
	key := model.Key(year, month)

	raw, ok, err := s.storage.Get(key)
	if err != nil {
		return fmt.Errorf("reading %s: %w", key, err)
	}

	if ok {
		snap, decErr := model.DecodeSnapshot(raw)
		if decErr == nil {
			s.year, s.month, s.snap = year, month, snap
			return nil
		}
		// Unreadable is treated the same as absent.
	}

	s.year, s.month = year, month
	s.snap = model.NewMonthSnapshot()
	return s.persist()
}

// ChangeMonth moves the active month by delta months, wrapping the year
// in either direction, and loads the target month's snapshot.
func (s *Store) ChangeMonth(delta int) error {
	t := time.Date(s.year, s.month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return s.LoadMonth(t.Year(), t.Month())
}

// ToggleDay flips the habit's done flag for a day. An id not present in
// the habit list is still accepted; the original tracker allowed it and
// the orphaned entry is harmless (it dies with the month snapshot).
func (s *Store) ToggleDay(habitID int64, day int) error {
	inner := s.snap.Data[habitID]
	if inner == nil {
		inner = make(map[int]bool)
		s.snap.Data[habitID] = inner
	}
	inner[day] = !inner[day]
	return s.persist()
}

// AddHabit appends a habit with a fresh id and a random palette color.
func (s *Store) AddHabit(name string) (model.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Habit{}, ErrEmptyName
	}

	h := model.Habit{ID: model.NewID(), Name: name, Color: model.RandomColor()}
	s.snap.Habits = append(s.snap.Habits, h)
	s.snap.Data[h.ID] = make(map[int]bool)

	if err := s.persist(); err != nil {
		return model.Habit{}, err
	}
	return h, nil
}

// RemoveHabit deletes a habit and all of its completion entries.
// Removing an unknown id is a no-op.
func (s *Store) RemoveHabit(id int64) error {
	found := false
	habits := s.snap.Habits[:0]
	for _, h := range s.snap.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return nil
	}

	s.snap.Habits = habits
	delete(s.snap.Data, id)
	return s.persist()
}

// HabitByID looks up a habit in the active snapshot.
func (s *Store) HabitByID(id int64) (model.Habit, bool) {
	for _, h := range s.snap.Habits {
		if h.ID == id {
			return h, true
		}
	}
	return model.Habit{}, false
}

func (s *Store) persist() error {
	raw, err := s.snap.Encode()
	if err != nil {
		return err
	}
	key := model.Key(s.year, s.month)
	if err := s.storage.Set(key, raw); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
