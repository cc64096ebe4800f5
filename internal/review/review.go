// Package review surfaces passed topics that have gone stale and are
// worth a refresher pass before exam day. Suggestions are advisory:
// acting on one is just selecting the lesson again.
package review

import (
	"sort"
	"time"

	"github.com/mbhatt/taxtutor/internal/progress"
)

// RefreshAfterDays is how long a passed topic stays fresh before it
// shows up as a refresher suggestion.
const RefreshAfterDays = 14

// Suggestion flags a passed lesson worth revisiting.
type Suggestion struct {
	Index     int // curriculum position, valid for lesson selection
	Day       int
	Topic     string
	StaleDays int // full days since the topic was passed
}

// Due returns passed lessons whose pass date is RefreshAfterDays or more
// behind now, most stale first. Lessons without a recorded pass date are
// skipped.
func Due(records []progress.Record, now time.Time) []Suggestion {
	var out []Suggestion
	for i, r := range records {
		if r.Status != progress.StatusPassed || r.PassedAt == nil {
			continue
		}
		staleDays := int(now.Sub(*r.PassedAt).Hours() / 24)
		if staleDays < RefreshAfterDays {
			continue
		}
		out = append(out, Suggestion{
			Index:     i,
			Day:       r.Lesson.Day,
			Topic:     r.Lesson.Topic,
			StaleDays: staleDays,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StaleDays != out[j].StaleDays {
			return out[i].StaleDays > out[j].StaleDays
		}
		return out[i].Day < out[j].Day
	})
	return out
}

// IsDue reports whether a single record is due for a refresher.
func IsDue(r progress.Record, now time.Time) bool {
	if r.Status != progress.StatusPassed || r.PassedAt == nil {
		return false
	}
	return now.Sub(*r.PassedAt) >= RefreshAfterDays*24*time.Hour
}
