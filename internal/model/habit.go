// Package model defines the habit-tracking data model: habits, the
// sparse per-day completion map, and the month snapshot that gets
// persisted as a unit.
package model

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Habit is a user-defined trackable activity.
type Habit struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CompletionMap records which habits were completed on which days of the
// month. It is sparse: only explicitly toggled days have entries, and an
// absent day is equivalent to false. Keys marshal as JSON strings.
type CompletionMap map[int64]map[int]bool

// Done reports whether the habit was completed on the given day.
func (c CompletionMap) Done(habitID int64, day int) bool {
	return c[habitID][day]
}

// Palette is the fixed set of display colors for new habits. A color is
// picked uniformly at random per addition; two habits may share one.
var Palette = []string{
	"#8ecae6",
	"#219ebc",
	"#ffd166",
	"#06d6a0",
	"#ef476f",
	"#f78c6b",
	"#9b5de5",
}

// RandomColor picks a palette color for a new habit.
func RandomColor() string {
	return Palette[rand.IntN(len(Palette))]
}

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID generates a time-based habit id. Millisecond timestamps are
// unique enough across sessions; the guard keeps ids strictly
// increasing when two habits are added within the same millisecond.
func NewID() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// DefaultHabits returns the starter set seeded into months that have no
// stored snapshot yet. Each call generates fresh ids.
func DefaultHabits() []Habit {
	return []Habit{
		{ID: NewID(), Name: "Meditation", Color: "#8ecae6"},
		{ID: NewID(), Name: "Workout", Color: "#219ebc"},
		{ID: NewID(), Name: "Read 30 min", Color: "#ffd166"},
		{ID: NewID(), Name: "No sugar", Color: "#06d6a0"},
	}
}
