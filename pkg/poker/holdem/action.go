package holdem

import "fmt"

// ActionKind is the kind of action a player can take
type ActionKind int

// Constants for ActionKind
const (
	ActionFold ActionKind = iota
	ActionCheckOrCall
	ActionRaise
)

// String returns the string representation of an action kind
func (k ActionKind) String() string {
	switch k {
	case ActionFold:
		return "fold"
	case ActionCheckOrCall:
		return "check_or_call"
	case ActionRaise:
		return "raise"
	default:
		panic(fmt.Sprintf("unknown action kind: %d", k))
	}
}

// ActionKindFromString returns the action kind from a string
func ActionKindFromString(s string) (ActionKind, error) {
	switch s {
	case "fold":
		return ActionFold, nil
	case "check_or_call":
		return ActionCheckOrCall, nil
	case "raise":
		return ActionRaise, nil
	}

	return 0, fmt.Errorf("%s is not a valid action", s)
}

// Action is a player intent. Raise carries the target total street bet;
// the other kinds ignore RaiseTo.
type Action struct {
	Kind    ActionKind
	RaiseTo int
}

// FoldAction returns a fold action
func FoldAction() Action {
	return Action{Kind: ActionFold}
}

// CheckOrCallAction returns the combined check/call action. The engine pays
// whatever is needed to match the current bet, which may be zero.
func CheckOrCallAction() Action {
	return Action{Kind: ActionCheckOrCall}
}

// RaiseAction returns a raise to the specified total street bet
func RaiseAction(to int) Action {
	return Action{Kind: ActionRaise, RaiseTo: to}
}

// ApplyResult reports whether an action mutated the hand.
// Illegal actions are absorbed without a state change and reported
// as ResultIgnored rather than an error.
type ApplyResult int

// Constants for ApplyResult
const (
	ResultIgnored ApplyResult = iota
	ResultApplied
)

// String returns the string representation of an apply result
func (r ApplyResult) String() string {
	if r == ResultApplied {
		return "applied"
	}

	return "ignored"
}
