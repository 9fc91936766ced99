package tui

// FocusTarget identifies which region currently holds keyboard focus.
type FocusTarget int

const (
	FocusStage FocusTarget = iota // triggers and stage scrolling
	FocusLog                      // event log scrolling
)

// Next returns the next focus target in tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % 2
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusStage:
		return "stage"
	case FocusLog:
		return "log"
	default:
		return "unknown"
	}
}
