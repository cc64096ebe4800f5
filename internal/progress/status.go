package progress

// Status represents a lesson's position in the study lifecycle.
type Status string

const (
	StatusLocked Status = "locked"
	StatusActive Status = "active"
	StatusPassed Status = "passed"
)

// Icon returns the display icon for a lesson status.
func (s Status) Icon() string {
	switch s {
	case StatusLocked:
		return "🔒"
	case StatusActive:
		return "▶"
	case StatusPassed:
		return "✅"
	default:
		return "?"
	}
}

// Label returns the display label for a lesson status.
func (s Status) Label() string {
	switch s {
	case StatusLocked:
		return "Locked"
	case StatusActive:
		return "Active"
	case StatusPassed:
		return "Passed"
	default:
		return "Unknown"
	}
}
