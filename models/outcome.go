package models

// Outcome reports what a single-document mutation did.
type Outcome int

const (
	OutcomeNotFound Outcome = iota
	OutcomeUnchanged
	OutcomeApplied
)

// Found reports whether the target document existed.
func (o Outcome) Found() bool { return o != OutcomeNotFound }

// Changed reports whether the store was modified.
func (o Outcome) Changed() bool { return o == OutcomeApplied }

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeApplied:
		return "applied"
	default:
		return "not_found"
	}
}
