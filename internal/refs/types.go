// Package refs looks up authoritative citations (IRS publications, code
// sections, forms) for a lesson topic. Lookups are best effort: every
// failure reduces to an empty result so a missing citation never blocks
// the tutoring flow.
package refs

// Reference is a single citation shown alongside a scenario.
type Reference struct {
	Title string
	URI   string
}
