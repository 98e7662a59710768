package holdem

import "holdem-server/pkg/deck"

// Player is a seat at the table. Seat, Name, and Stack persist across hands;
// the remaining fields are per-hand state reset by each deal.
type Player struct {
	Seat  int
	Name  string
	Stack int

	// per-hand state
	Bet        int
	InHand     bool
	HoleCards  deck.Hand
	LastAction string

	acted bool
}

// resetForHand clears the per-hand state ahead of a new deal
func (p *Player) resetForHand() {
	p.Bet = 0
	p.InHand = true
	p.HoleCards = make(deck.Hand, 0, 2)
	p.LastAction = ""
	p.acted = false
}

// pay moves up to amount from the stack into the player's street bet and
// returns the chips actually moved. A short stack pays what it can (all-in).
func (p *Player) pay(amount int) int {
	if amount > p.Stack {
		amount = p.Stack
	}

	p.Stack -= amount
	p.Bet += amount

	return amount
}
