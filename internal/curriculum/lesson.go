package curriculum

// Phase represents a block of the study plan.
type Phase string

const (
	PhaseIndividuals    Phase = "individuals"
	PhaseBusinesses     Phase = "businesses"
	PhaseRepresentation Phase = "representation"
)

// AllPhases returns all phases in study order.
func AllPhases() []Phase {
	return []Phase{
		PhaseIndividuals,
		PhaseBusinesses,
		PhaseRepresentation,
	}
}

// PhaseDisplayName returns a human-readable name for a phase.
func PhaseDisplayName(p Phase) string {
	switch p {
	case PhaseIndividuals:
		return "Individuals"
	case PhaseBusinesses:
		return "Businesses"
	case PhaseRepresentation:
		return "Representation, Practices & Procedures"
	default:
		return string(p)
	}
}

// Part identifies the SEE exam part a lesson belongs to.
type Part string

const (
	Part1 Part = "SEE1"
	Part2 Part = "SEE2"
	Part3 Part = "SEE3"
)

// PartDisplayName returns a human-readable name for an exam part.
func PartDisplayName(p Part) string {
	switch p {
	case Part1:
		return "SEE Part 1: Individuals"
	case Part2:
		return "SEE Part 2: Businesses"
	case Part3:
		return "SEE Part 3: Representation, Practices and Procedures"
	default:
		return string(p)
	}
}

// Lesson is a single day of the study plan. Day is the unique key and
// defines the overall ordering of the curriculum.
type Lesson struct {
	Week        int
	Day         int
	Phase       Phase
	Topic       string
	Description string
	Citation    string
	ExamPart    Part
}
