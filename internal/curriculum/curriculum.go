package curriculum

import (
	"fmt"
	"slices"
)

// plan holds the ordered lesson table with precomputed indices.
type plan struct {
	lessons []Lesson
	byDay   map[int]*Lesson
	byPhase map[Phase][]Lesson
	byWeek  map[int][]Lesson
}

// p is the package-level plan singleton, set by init() in table.go.
var p *plan

// buildPlan constructs the plan from a slice of lessons.
// Lessons are sorted by day, which is the curriculum order.
func buildPlan(lessons []Lesson) *plan {
	sorted := slices.Clone(lessons)
	slices.SortFunc(sorted, func(a, b Lesson) int { return a.Day - b.Day })

	pl := &plan{
		lessons: sorted,
		byDay:   make(map[int]*Lesson, len(sorted)),
		byPhase: make(map[Phase][]Lesson),
		byWeek:  make(map[int][]Lesson),
	}
	for i := range pl.lessons {
		l := &pl.lessons[i]
		pl.byDay[l.Day] = l
		pl.byPhase[l.Phase] = append(pl.byPhase[l.Phase], *l)
		pl.byWeek[l.Week] = append(pl.byWeek[l.Week], *l)
	}
	return pl
}

// Lessons returns the full curriculum in day order.
func Lessons() []Lesson {
	return slices.Clone(p.lessons)
}

// Count returns the number of lessons in the curriculum.
func Count() int {
	return len(p.lessons)
}

// ByDay returns the lesson for a given day, or an error if not found.
func ByDay(day int) (Lesson, error) {
	l, ok := p.byDay[day]
	if !ok {
		return Lesson{}, fmt.Errorf("no lesson for day %d", day)
	}
	return *l, nil
}

// ByPhase returns all lessons in a phase, in day order.
func ByPhase(phase Phase) []Lesson {
	return slices.Clone(p.byPhase[phase])
}

// ByWeek returns all lessons in a week, in day order.
func ByWeek(week int) []Lesson {
	return slices.Clone(p.byWeek[week])
}

// Next returns the lesson following the given day, if any.
func Next(day int) (Lesson, bool) {
	for i := range p.lessons {
		if p.lessons[i].Day == day {
			if i+1 < len(p.lessons) {
				return p.lessons[i+1], true
			}
			return Lesson{}, false
		}
	}
	return Lesson{}, false
}

// Index returns the zero-based position of a day in the curriculum order,
// or -1 if the day does not exist.
func Index(day int) int {
	for i := range p.lessons {
		if p.lessons[i].Day == day {
			return i
		}
	}
	return -1
}

// Validate checks the lesson table for structural issues.
func Validate() error {
	return validateLessons(p.lessons)
}
