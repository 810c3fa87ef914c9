package types

// Mode represents the current state of the picker session
type Mode int

const (
	// Browsing is the default mode: arrows move, enter applies
	Browsing Mode = iota
	// Searching routes keystrokes into the filter text
	Searching
	// Confirming shows the apply confirmation dialog
	Confirming
	// Applying waits for the external tool to finish
	Applying
	// Terminated ends the session
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Browsing:
		return "browsing"
	case Searching:
		return "searching"
	case Confirming:
		return "confirming"
	case Applying:
		return "applying"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Outcome is how a session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeApplied
	OutcomeCancelled
)
