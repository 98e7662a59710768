package holdem

import (
	"github.com/sirupsen/logrus"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
	"holdem-server/pkg/poker/eval"
)

// action labels shown to the presentation layer
const (
	labelSmallBlind = "SB"
	labelBigBlind   = "BB"
	labelFold       = "FOLD"
	labelCheck      = "CHECK"
	labelCall       = "CALL"
	labelRaise      = "RAISE"
)

// Hand is one deal of Texas Hold'em: blinds, four betting rounds, and
// settlement. It mutates the shared Player records in place; the Game that
// created it sees stack changes without a copy-back step.
type Hand struct {
	log logrus.FieldLogger

	players        []*Player
	button         int
	smallBlindSeat int
	bigBlindSeat   int
	bigBlind       int

	pot          int
	community    deck.Hand
	currentBet   int
	currentActor int
	showdown     bool
	settled      bool

	deck *deck.Deck
}

func newHand(log logrus.FieldLogger, players []*Player, button, bigBlind int, gen rng.Generator) (*Hand, error) {
	n := len(players)
	h := &Hand{
		log:            log,
		players:        players,
		button:         button,
		smallBlindSeat: (button + 1) % n,
		bigBlindSeat:   (button + 2) % n,
		bigBlind:       bigBlind,
		community:      make(deck.Hand, 0, 5),
		deck:           deck.New(gen),
	}

	for _, p := range players {
		p.resetForHand()
	}

	// two passes, starting left of the button
	for i := 0; i < 2; i++ {
		for j := 1; j <= n; j++ {
			card, err := h.deck.Draw()
			if err != nil {
				return nil, err
			}

			h.players[(button+j)%n].HoleCards.AddCard(card)
		}
	}

	h.postBlind(h.smallBlindSeat, bigBlind/2, labelSmallBlind)
	h.postBlind(h.bigBlindSeat, bigBlind, labelBigBlind)
	h.currentBet = bigBlind
	h.currentActor = h.nextInHand(h.bigBlindSeat)

	log.WithFields(logrus.Fields{
		"button": button,
		"sb":     h.smallBlindSeat,
		"bb":     h.bigBlindSeat,
		"pot":    h.pot,
	}).Debug("hand dealt")

	return h, nil
}

// postBlind moves a forced bet into the pot. Posting counts as acting for
// the street; the poster regains the option only if the bet is raised.
func (h *Hand) postBlind(seat, amount int, label string) {
	p := h.players[seat]
	h.pot += p.pay(amount)
	p.acted = true
	p.LastAction = label
}

// Apply applies one action for the given seat.
// Out-of-turn actions, actions for folded seats, and raises without an
// amount do not change state and return ResultIgnored.
func (h *Hand) Apply(seat int, act Action) ApplyResult {
	if h.settled || seat < 0 || seat >= len(h.players) || seat != h.currentActor {
		return ResultIgnored
	}

	p := h.players[seat]
	if !p.InHand {
		return ResultIgnored
	}

	switch act.Kind {
	case ActionFold:
		p.InHand = false
		p.acted = true
		p.LastAction = labelFold

	case ActionCheckOrCall:
		needed := h.currentBet - p.Bet
		if needed < 0 {
			needed = 0
		}

		h.pot += p.pay(needed)
		p.acted = true
		if needed == 0 {
			p.LastAction = labelCheck
		} else {
			p.LastAction = labelCall
		}

	case ActionRaise:
		if act.RaiseTo <= 0 {
			return ResultIgnored
		}

		// a raise below the current bet is corrected up, never rejected
		raiseTo := act.RaiseTo
		if raiseTo < h.currentBet {
			raiseTo = h.currentBet
		}

		h.pot += p.pay(raiseTo - p.Bet)

		// an all-in may come up short of raiseTo; the round only reopens
		// if the bet actually increased
		if p.Bet > h.currentBet {
			h.currentBet = p.Bet
			for _, other := range h.players {
				if other != p && other.InHand {
					other.acted = false
				}
			}
		}

		p.acted = true
		p.LastAction = labelRaise

	default:
		return ResultIgnored
	}

	h.log.WithFields(logrus.Fields{
		"seat":   seat,
		"action": p.LastAction,
		"bet":    p.Bet,
		"pot":    h.pot,
	}).Debug("action applied")

	return ResultApplied
}

// AdvanceTurn moves the current actor to the next seat still in the hand,
// wrapping in seating order
func (h *Hand) AdvanceTurn() {
	h.currentActor = h.nextInHand(h.currentActor)
}

func (h *Hand) nextInHand(seat int) int {
	n := len(h.players)
	for i := 1; i <= n; i++ {
		next := (seat + i) % n
		if h.players[next].InHand {
			return next
		}
	}

	return seat
}

// IsRoundComplete returns true if at most one player remains in the hand,
// or every remaining player has acted and all street bets are equal
func (h *Hand) IsRoundComplete() bool {
	if h.remaining() <= 1 {
		return true
	}

	for _, p := range h.players {
		if p.InHand && (!p.acted || p.Bet != h.currentBet) {
			return false
		}
	}

	return true
}

func (h *Hand) remaining() int {
	count := 0
	for _, p := range h.players {
		if p.InHand {
			count++
		}
	}

	return count
}

// Street returns the current betting phase
func (h *Hand) Street() Street {
	if h.showdown || h.settled {
		return Showdown
	}

	switch len(h.community) {
	case 0:
		return PreFlop
	case 3:
		return Flop
	case 4:
		return Turn
	}

	return River
}

// AdvanceStreet deals the next street, or settles the hand if it has
// reached showdown or only one player remains.
// The caller is expected to invoke it once IsRoundComplete returns true.
func (h *Hand) AdvanceStreet() error {
	if h.settled {
		return nil
	}

	// a fold-out ends the hand immediately, mid-street or not
	if h.remaining() <= 1 {
		return h.settle()
	}

	var dealCount int
	switch len(h.community) {
	case 0:
		dealCount = 3
	case 3, 4:
		dealCount = 1
	case 5:
		h.showdown = true
		return h.settle()
	}

	for i := 0; i < dealCount; i++ {
		card, err := h.deck.Draw()
		if err != nil {
			return err
		}

		h.community.AddCard(card)
	}

	// chips already in the pot stay; only the street bets reset
	h.currentBet = 0
	for _, p := range h.players {
		p.Bet = 0
		p.acted = false
		p.LastAction = ""
	}

	h.currentActor = h.nextInHand(h.button)

	h.log.WithFields(logrus.Fields{
		"street":    h.Street().String(),
		"community": h.community.String(),
	}).Debug("street dealt")

	return nil
}

// Settled returns true once the pot has been awarded
func (h *Hand) Settled() bool {
	return h.settled
}

// settle awards the pot. With one player left the pot is theirs; otherwise
// the board is run out if needed and the best seven-card hands split the
// pot, with odd chips going one at a time to winners clockwise from the
// button.
func (h *Hand) settle() error {
	if h.settled {
		return nil
	}

	contenders := make([]*Player, 0, len(h.players))
	for _, p := range h.players {
		if p.InHand {
			contenders = append(contenders, p)
		}
	}

	var winners []*Player
	if len(contenders) <= 1 {
		winners = contenders
	} else {
		// an abandoned hand may settle before the river
		for len(h.community) < 5 {
			card, err := h.deck.Draw()
			if err != nil {
				return err
			}

			h.community.AddCard(card)
		}

		h.showdown = true

		var best eval.Score
		for _, p := range contenders {
			score, err := eval.BestOfSeven(append(p.HoleCards.Clone(), h.community...))
			if err != nil {
				return err
			}

			h.log.WithFields(logrus.Fields{
				"seat":  p.Seat,
				"cards": p.HoleCards.String(),
				"score": score.String(),
			}).Debug("showdown")

			switch cmp := score.Compare(best); {
			case len(winners) == 0 || cmp > 0:
				best = score
				winners = []*Player{p}
			case cmp == 0:
				winners = append(winners, p)
			}
		}
	}

	h.awardPot(winners)
	h.settled = true
	return nil
}

// awardPot splits the pot evenly among the winners. Any remainder is handed
// out one chip at a time starting at the seat after the button.
func (h *Hand) awardPot(winners []*Player) {
	if len(winners) == 0 {
		return
	}

	isWinner := make(map[int]bool, len(winners))
	for _, p := range winners {
		isWinner[p.Seat] = true
	}

	share := h.pot / len(winners)
	remainder := h.pot % len(winners)

	for _, p := range winners {
		p.Stack += share
	}

	n := len(h.players)
	for i := 1; remainder > 0; i++ {
		seat := (h.button + i) % n
		if isWinner[seat] {
			h.players[seat].Stack++
			remainder--
		}
	}

	for _, p := range winners {
		h.log.WithFields(logrus.Fields{
			"seat":  p.Seat,
			"name":  p.Name,
			"won":   share,
			"stack": p.Stack,
		}).Info("pot awarded")
	}

	h.pot = 0
}

// Pot returns the chips collected this hand and not yet awarded
func (h *Hand) Pot() int {
	return h.pot
}

// CurrentActor returns the seat whose turn it is
func (h *Hand) CurrentActor() int {
	return h.currentActor
}

// CurrentBet returns the street bet to match
func (h *Hand) CurrentBet() int {
	return h.currentBet
}

// Community returns the board dealt so far
func (h *Hand) Community() deck.Hand {
	return h.community.Clone()
}
