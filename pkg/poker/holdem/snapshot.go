package holdem

import "holdem-server/pkg/deck"

// SpectatorViewer is a snapshot viewer with no seat; it sees only public
// information
const SpectatorViewer = -1

// OmniscientViewer is a snapshot viewer that sees every hole card.
// It is meant for the table log and for tests, never for a player.
const OmniscientViewer = -2

// SeatSnapshot is the read-only view of one seat
type SeatSnapshot struct {
	Seat       int      `json:"seat"`
	Name       string   `json:"name"`
	Stack      int      `json:"stack"`
	Bet        int      `json:"bet"`
	InHand     bool     `json:"inHand"`
	Cards      []string `json:"cards"`
	LastAction string   `json:"lastAction"`
}

// Snapshot is the read-only projection of the table handed to the
// presentation layer. It shares no mutable state with the engine.
type Snapshot struct {
	Seats        []*SeatSnapshot `json:"seats"`
	Community    []string        `json:"community"`
	Pot          int             `json:"pot"`
	CurrentBet   int             `json:"currentBet"`
	CurrentActor int             `json:"currentActor"`
	Street       string          `json:"street"`
	Showdown     bool            `json:"showdown"`
	HandNumber   int             `json:"handNumber"`
	Button       int             `json:"button"`
}

// Snapshot returns the hand's state as seen by the viewer seat.
// Hole cards are masked as "??" unless the viewer owns them or the hand has
// reached showdown (folded cards stay hidden even then).
func (h *Hand) Snapshot(viewer int) *Snapshot {
	seats := make([]*SeatSnapshot, len(h.players))
	for i, p := range h.players {
		seats[i] = h.seatSnapshot(p, viewer)
	}

	community := make([]string, len(h.community))
	for i, card := range h.community {
		community[i] = card.String()
	}

	return &Snapshot{
		Seats:        seats,
		Community:    community,
		Pot:          h.pot,
		CurrentBet:   h.currentBet,
		CurrentActor: h.currentActor,
		Street:       h.Street().String(),
		Showdown:     h.showdown,
		Button:       h.button,
	}
}

func (h *Hand) seatSnapshot(p *Player, viewer int) *SeatSnapshot {
	reveal := viewer == OmniscientViewer ||
		viewer == p.Seat ||
		(h.showdown && p.InHand)

	cards := make([]string, len(p.HoleCards))
	for i, card := range p.HoleCards {
		if reveal {
			cards[i] = card.String()
		} else {
			cards[i] = deck.UnknownCard
		}
	}

	return &SeatSnapshot{
		Seat:       p.Seat,
		Name:       p.Name,
		Stack:      p.Stack,
		Bet:        p.Bet,
		InHand:     p.InHand,
		Cards:      cards,
		LastAction: p.LastAction,
	}
}

// Snapshot returns the current table view. Between hands only the roster is
// populated and CurrentActor is -1.
func (g *Game) Snapshot(viewer int) *Snapshot {
	if g.hand != nil {
		snapshot := g.hand.Snapshot(viewer)
		snapshot.HandNumber = g.handCount
		return snapshot
	}

	seats := make([]*SeatSnapshot, len(g.players))
	for i, p := range g.players {
		seats[i] = &SeatSnapshot{
			Seat:   p.Seat,
			Name:   p.Name,
			Stack:  p.Stack,
			Cards:  []string{},
			InHand: false,
		}
	}

	return &Snapshot{
		Seats:        seats,
		Community:    []string{},
		CurrentActor: -1,
		HandNumber:   g.handCount,
		Button:       g.button,
	}
}
