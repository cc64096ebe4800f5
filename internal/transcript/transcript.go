// Package transcript holds the conversation log for a tutoring session.
// The log is append-only while a lesson is in progress and cleared
// wholesale on lesson changes and mock-exam transitions.
package transcript

import (
	"slices"

	"github.com/google/uuid"

	"github.com/mbhatt/taxtutor/internal/refs"
)

// Sender identifies who produced a transcript entry.
type Sender string

const (
	SenderLearner Sender = "learner"
	SenderTutor   Sender = "tutor"
	SenderSystem  Sender = "system"
)

// Entry is a single message in the conversation.
type Entry struct {
	ID     string
	Sender Sender
	Text   string
	Refs   []refs.Reference
}

// Log is the ordered conversation history.
type Log struct {
	entries []Entry
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds an entry with the given sender and text.
func (l *Log) Append(sender Sender, text string) Entry {
	e := Entry{ID: uuid.NewString(), Sender: sender, Text: text}
	l.entries = append(l.entries, e)
	return e
}

// AppendWithRefs adds a tutor entry carrying citation references.
func (l *Log) AppendWithRefs(sender Sender, text string, references []refs.Reference) Entry {
	e := Entry{ID: uuid.NewString(), Sender: sender, Text: text, Refs: slices.Clone(references)}
	l.entries = append(l.entries, e)
	return e
}

// Entries returns a copy of the log in append order.
func (l *Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry, if any.
func (l *Log) Last() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Clear discards all entries.
func (l *Log) Clear() {
	l.entries = nil
}
