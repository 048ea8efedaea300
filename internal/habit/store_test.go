package habit

import (
	"errors"
	"testing"
	"time"

	"github.com/theirongolddev/habitgrid/internal/model"
	"github.com/theirongolddev/habitgrid/internal/store"
)

func fixedClock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	}
}

func newTestStore(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	s := New(mem, fixedClock(2026, time.August, 10))
	if err := s.LoadMonth(2026, time.August); err != nil {
		t.Fatalf("LoadMonth: %v", err)
	}
	return s, mem
}

func TestLoadMonthSeedsDefaults(t *testing.T) {
	s, mem := newTestStore(t)

	snap := s.Snapshot()
	if len(snap.Habits) != 4 {
		t.Fatalf("seeded habits = %d, want 4", len(snap.Habits))
	}
	for _, h := range snap.Habits {
		if len(snap.Data[h.ID]) != 0 {
			t.Fatalf("habit %q seeded with completion data", h.Name)
		}
	}

	// The default snapshot is written through immediately.
	raw, ok, err := mem.Get(model.Key(2026, time.August))
	if err != nil || !ok {
		t.Fatalf("seed not persisted: ok=%v err=%v", ok, err)
	}
	persisted, err := model.DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("persisted seed unreadable: %v", err)
	}
	if len(persisted.Habits) != 4 {
		t.Fatalf("persisted habits = %d, want 4", len(persisted.Habits))
	}
}

func TestLoadMonthUnreadableFallsBack(t *testing.T) {
	mem := store.NewMemory()
	key := model.Key(2026, time.August)
	if err := mem.Set(key, "{definitely not json"); err != nil {
		t.Fatal(err)
	}

	s := New(mem, fixedClock(2026, time.August, 10))
	if err := s.LoadMonth(2026, time.August); err != nil {
		t.Fatalf("LoadMonth with corrupt value: %v", err)
	}
	if len(s.Snapshot().Habits) != 4 {
		t.Fatalf("habits = %d, want default 4", len(s.Snapshot().Habits))
	}

	// The corrupt value is replaced by the default snapshot.
	raw, _, _ := mem.Get(key)
	if _, err := model.DecodeSnapshot(raw); err != nil {
		t.Fatalf("store still holds unreadable value: %v", err)
	}
}

func TestToggleDayInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Snapshot().Habits[0].ID

	if s.Snapshot().Data.Done(id, 5) {
		t.Fatal("day 5 starts done")
	}
	if err := s.ToggleDay(id, 5); err != nil {
		t.Fatal(err)
	}
	if !s.Snapshot().Data.Done(id, 5) {
		t.Fatal("toggle did not mark day done")
	}
	if err := s.ToggleDay(id, 5); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Data.Done(id, 5) {
		t.Fatal("double toggle did not restore original state")
	}
}

func TestToggleDayOrphanAllowed(t *testing.T) {
	s, _ := newTestStore(t)

	// Toggling an id with no habit is accepted; the entry is orphaned
	// but harmless.
	if err := s.ToggleDay(999, 3); err != nil {
		t.Fatalf("orphan toggle: %v", err)
	}
	if !s.Snapshot().Data.Done(999, 3) {
		t.Fatal("orphan entry not recorded")
	}
}

func TestToggleDayPersists(t *testing.T) {
	s, mem := newTestStore(t)
	id := s.Snapshot().Habits[1].ID

	if err := s.ToggleDay(id, 7); err != nil {
		t.Fatal(err)
	}

	raw, _, _ := mem.Get(model.Key(2026, time.August))
	persisted, err := model.DecodeSnapshot(raw)
	if err != nil {
		t.Fatal(err)
	}
	if !persisted.Data.Done(id, 7) {
		t.Fatal("toggle not written through")
	}
}

func TestAddHabit(t *testing.T) {
	s, _ := newTestStore(t)

	h, err := s.AddHabit("  Journal  ")
	if err != nil {
		t.Fatalf("AddHabit: %v", err)
	}
	if h.Name != "Journal" {
		t.Fatalf("name = %q, want trimmed %q", h.Name, "Journal")
	}
	if h.Color == "" {
		t.Fatal("new habit has no color")
	}

	snap := s.Snapshot()
	if len(snap.Habits) != 5 {
		t.Fatalf("habits = %d, want 5", len(snap.Habits))
	}
	if snap.Habits[4].ID != h.ID {
		t.Fatal("new habit not appended at the end")
	}
	if inner, ok := snap.Data[h.ID]; !ok || len(inner) != 0 {
		t.Fatal("new habit missing empty completion map")
	}
}

func TestAddHabitEmptyName(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.AddHabit("   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("AddHabit(blank) err = %v, want ErrEmptyName", err)
	}
	if len(s.Snapshot().Habits) != 4 {
		t.Fatal("blank add changed the habit list")
	}
}

func TestRemoveHabitDeletesEntries(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Snapshot().Habits[0].ID

	if err := s.ToggleDay(id, 1); err != nil {
		t.Fatal(err)
	}
	if err := s.RemoveHabit(id); err != nil {
		t.Fatalf("RemoveHabit: %v", err)
	}

	snap := s.Snapshot()
	if len(snap.Habits) != 3 {
		t.Fatalf("habits = %d, want 3", len(snap.Habits))
	}
	if _, ok := snap.Data[id]; ok {
		t.Fatal("removed habit's completion map still present")
	}

	// Re-adding the same name yields a fresh id and empty data.
	h, err := s.AddHabit("Meditation")
	if err != nil {
		t.Fatal(err)
	}
	if h.ID == id {
		t.Fatal("re-added habit reused the old id")
	}
	if len(s.Snapshot().Data[h.ID]) != 0 {
		t.Fatal("re-added habit resurrected old entries")
	}
}

func TestRemoveHabitUnknownIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.RemoveHabit(424242); err != nil {
		t.Fatalf("RemoveHabit(unknown) = %v, want nil", err)
	}
	if len(s.Snapshot().Habits) != 4 {
		t.Fatal("no-op removal changed the habit list")
	}
}

func TestChangeMonthWrapsYear(t *testing.T) {
	mem := store.NewMemory()
	s := New(mem, fixedClock(2026, time.December, 15))
	if err := s.LoadMonth(2026, time.December); err != nil {
		t.Fatal(err)
	}

	if err := s.ChangeMonth(1); err != nil {
		t.Fatal(err)
	}
	if s.Year() != 2027 || s.Month() != time.January {
		t.Fatalf("after December+1: %d-%s, want 2027-January", s.Year(), s.Month())
	}

	if err := s.ChangeMonth(-1); err != nil {
		t.Fatal(err)
	}
	if s.Year() != 2026 || s.Month() != time.December {
		t.Fatalf("after January-1: %d-%s, want 2026-December", s.Year(), s.Month())
	}
}

func TestChangeMonthSwapsSnapshots(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Snapshot().Habits[0].ID
	if err := s.ToggleDay(id, 5); err != nil {
		t.Fatal(err)
	}

	// Each month owns an independent snapshot.
	if err := s.ChangeMonth(1); err != nil {
		t.Fatal(err)
	}
	if s.Snapshot().Data.Done(id, 5) {
		t.Fatal("September sees August's completion data")
	}

	// Going back restores the persisted August state.
	if err := s.ChangeMonth(-1); err != nil {
		t.Fatal(err)
	}
	if !s.Snapshot().Data.Done(id, 5) {
		t.Fatal("August snapshot lost after round trip")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Snapshot().Habits[0].ID

	snap := s.Snapshot()
	snap.Data[id] = map[int]bool{1: true}

	if s.Snapshot().Data.Done(id, 1) {
		t.Fatal("mutating a returned snapshot leaked into the store")
	}
}
