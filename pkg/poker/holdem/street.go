package holdem

// Street is a betting phase, derived from the board length and the
// showdown flag rather than stored
type Street int

// Constants for Street
const (
	PreFlop Street = iota
	Flop
	Turn
	River
	Showdown
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case Showdown:
		return "showdown"
	}

	return ""
}
