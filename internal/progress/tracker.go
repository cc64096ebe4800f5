package progress

import (
	"fmt"
	"time"

	"github.com/mbhatt/taxtutor/internal/curriculum"
	"github.com/mbhatt/taxtutor/internal/store"
)

// MaxTwists is the number of twist rounds required to pass a lesson.
const MaxTwists = 2

// Record tracks a learner's progress on a single lesson.
type Record struct {
	Lesson          curriculum.Lesson
	Status          Status
	Score           int
	TwistsCompleted int
	PassedAt        *time.Time
}

// Tracker owns the per-lesson progress records, in curriculum order.
// It maintains two invariants: at most one record is active, and the
// current pointer always addresses a valid record.
type Tracker struct {
	records []Record
	current int
}

// NewTracker creates a tracker with every lesson locked and the first
// lesson promoted to active.
func NewTracker(lessons []curriculum.Lesson) *Tracker {
	t := &Tracker{records: make([]Record, len(lessons))}
	for i, l := range lessons {
		t.records[i] = Record{Lesson: l, Status: StatusLocked}
	}
	t.normalize()
	return t
}

// Load applies persisted progress rows. Rows for unknown days are ignored
// and missing rows keep their locked defaults. The active pointer is
// recomputed afterwards: the first non-passed lesson becomes active.
func (t *Tracker) Load(rows []store.LessonProgressData) {
	byDay := make(map[int]*Record, len(t.records))
	for i := range t.records {
		byDay[t.records[i].Lesson.Day] = &t.records[i]
	}

	for _, row := range rows {
		r, ok := byDay[row.Day]
		if !ok {
			continue
		}
		r.Status = Status(row.Status)
		r.Score = row.Score
		r.TwistsCompleted = row.TwistsCompleted
		if row.PassedAt != nil {
			if ts, err := time.Parse(time.RFC3339, *row.PassedAt); err == nil {
				r.PassedAt = &ts
			}
		}
	}

	// Saved statuses outside the lifecycle are reset to locked.
	for i := range t.records {
		switch t.records[i].Status {
		case StatusLocked, StatusActive, StatusPassed:
		default:
			t.records[i].Status = StatusLocked
		}
	}
	t.normalize()
}

// normalize enforces the single-active invariant: all actives are demoted,
// then the first non-passed lesson is promoted and becomes current. When
// every lesson is passed, no lesson is active and current stays on the
// last lesson.
func (t *Tracker) normalize() {
	for i := range t.records {
		if t.records[i].Status == StatusActive {
			t.records[i].Status = StatusLocked
		}
	}
	for i := range t.records {
		if t.records[i].Status != StatusPassed {
			t.records[i].Status = StatusActive
			t.current = i
			return
		}
	}
	if len(t.records) > 0 {
		t.current = len(t.records) - 1
	}
}

// Records returns a copy of all progress records in curriculum order.
func (t *Tracker) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of lessons tracked.
func (t *Tracker) Len() int {
	return len(t.records)
}

// At returns the record at a curriculum position.
func (t *Tracker) At(i int) (Record, error) {
	if i < 0 || i >= len(t.records) {
		return Record{}, fmt.Errorf("lesson index %d out of range [0,%d)", i, len(t.records))
	}
	return t.records[i], nil
}

// Current returns the index of the current lesson.
func (t *Tracker) Current() int {
	return t.current
}

// CurrentRecord returns the record the current pointer addresses.
func (t *Tracker) CurrentRecord() Record {
	if len(t.records) == 0 {
		return Record{}
	}
	return t.records[t.current]
}

// Activate moves the current pointer to lesson i. The previously active
// lesson is demoted to locked unless passed, and the target is promoted
// to active unless already passed.
func (t *Tracker) Activate(i int) error {
	if i < 0 || i >= len(t.records) {
		return fmt.Errorf("lesson index %d out of range [0,%d)", i, len(t.records))
	}
	for j := range t.records {
		if t.records[j].Status == StatusActive && j != i {
			t.records[j].Status = StatusLocked
		}
	}
	if t.records[i].Status != StatusPassed {
		t.records[i].Status = StatusActive
	}
	t.current = i
	return nil
}

// HasNext reports whether a lesson follows the current one.
func (t *Tracker) HasNext() bool {
	return t.current+1 < len(t.records)
}

// MarkPassed records a passing score on the current lesson.
func (t *Tracker) MarkPassed(score int) {
	if len(t.records) == 0 {
		return
	}
	now := time.Now()
	r := &t.records[t.current]
	r.Status = StatusPassed
	r.Score = score
	r.PassedAt = &now
}

// IncrementTwists bumps the twist counter on the current lesson and
// returns the new count. The counter never exceeds MaxTwists.
func (t *Tracker) IncrementTwists() int {
	if len(t.records) == 0 {
		return 0
	}
	r := &t.records[t.current]
	if r.TwistsCompleted < MaxTwists {
		r.TwistsCompleted++
	}
	return r.TwistsCompleted
}

// PassedCount returns the number of passed lessons.
func (t *Tracker) PassedCount() int {
	n := 0
	for i := range t.records {
		if t.records[i].Status == StatusPassed {
			n++
		}
	}
	return n
}

// AllPassed reports whether every lesson has been passed.
func (t *Tracker) AllPassed() bool {
	return t.PassedCount() == len(t.records) && len(t.records) > 0
}

// PassedLessons returns the lessons passed so far, in curriculum order.
func (t *Tracker) PassedLessons() []curriculum.Lesson {
	var out []curriculum.Lesson
	for i := range t.records {
		if t.records[i].Status == StatusPassed {
			out = append(out, t.records[i].Lesson)
		}
	}
	return out
}

// Export converts the records to their persisted form.
func (t *Tracker) Export() []store.LessonProgressData {
	rows := make([]store.LessonProgressData, len(t.records))
	for i, r := range t.records {
		rows[i] = store.LessonProgressData{
			Day:             r.Lesson.Day,
			Status:          string(r.Status),
			Score:           r.Score,
			TwistsCompleted: r.TwistsCompleted,
		}
		if r.PassedAt != nil {
			s := r.PassedAt.Format(time.RFC3339)
			rows[i].PassedAt = &s
		}
	}
	return rows
}
