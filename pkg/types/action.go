package types

// Action is what a single key press means in the current mode.
type Action int

const (
	None Action = iota
	MoveUp
	MoveDown
	Apply
	ToggleSearch
	TypeChar
	Backspace
	CancelSearch
	ConfirmSearchSelection
	Exit
)

func (a Action) String() string {
	switch a {
	case None:
		return "none"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Apply:
		return "apply"
	case ToggleSearch:
		return "toggle-search"
	case TypeChar:
		return "type-char"
	case Backspace:
		return "backspace"
	case CancelSearch:
		return "cancel-search"
	case ConfirmSearchSelection:
		return "confirm-search-selection"
	case Exit:
		return "exit"
	}
	return "unknown"
}

// Input is an interpreted key press. Char is set only for TypeChar and may
// hold more than one rune when text was pasted.
type Input struct {
	Action Action
	Char   string
}
