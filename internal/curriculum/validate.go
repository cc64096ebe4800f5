package curriculum

import (
	"fmt"
	"strings"
)

// validateLessons performs all structural checks on the given lesson table.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	if len(lessons) == 0 {
		return fmt.Errorf("curriculum validation failed:\n  lesson table is empty")
	}

	daySet := make(map[int]bool, len(lessons))
	phaseSet := make(map[Phase]bool)

	for _, l := range lessons {
		if daySet[l.Day] {
			errs = append(errs, fmt.Sprintf("duplicate day: %d", l.Day))
		}
		daySet[l.Day] = true
		phaseSet[l.Phase] = true

		prefix := fmt.Sprintf("day %d", l.Day)
		if l.Week <= 0 {
			errs = append(errs, fmt.Sprintf("%s: week must be > 0, got %d", prefix, l.Week))
		}
		if l.Topic == "" {
			errs = append(errs, prefix+": topic is empty")
		}
		if l.Description == "" {
			errs = append(errs, prefix+": description is empty")
		}
		if l.Citation == "" {
			errs = append(errs, prefix+": citation is empty")
		}
		switch l.ExamPart {
		case Part1, Part2, Part3:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown exam part %q", prefix, l.ExamPart))
		}
		switch l.Phase {
		case PhaseIndividuals, PhaseBusinesses, PhaseRepresentation:
		default:
			errs = append(errs, fmt.Sprintf("%s: unknown phase %q", prefix, l.Phase))
		}
	}

	// Days must be contiguous from 1 so that day N+1 always follows day N.
	for d := 1; d <= len(lessons); d++ {
		if !daySet[d] {
			errs = append(errs, fmt.Sprintf("missing day %d (days must run 1..%d)", d, len(lessons)))
		}
	}

	// Weeks must not interleave once the table is in day order.
	lastWeek := 0
	for _, l := range lessons {
		if l.Week < lastWeek {
			errs = append(errs, fmt.Sprintf("day %d: week %d appears after week %d", l.Day, l.Week, lastWeek))
		}
		lastWeek = l.Week
	}

	for _, phase := range AllPhases() {
		if !phaseSet[phase] {
			errs = append(errs, fmt.Sprintf("phase %q has no lessons", phase))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
