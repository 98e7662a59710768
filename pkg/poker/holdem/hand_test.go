package holdem

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"holdem-server/internal/rng"
	"holdem-server/pkg/deck"
)

func newTestGame(t *testing.T, seats int, seed int64) *Game {
	t.Helper()

	opts := DefaultOptions()
	opts.Seats = seats

	game, err := NewGame(logrus.StandardLogger(), rng.NewSeeded(seed), opts)
	assert.NoError(t, err)
	return game
}

func TestNewHand_blinds(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	// button 0: SB seat 1, BB seat 2, first actor seat 3
	a.Equal(1475, game.players[1].Stack)
	a.Equal(25, game.players[1].Bet)
	a.Equal("SB", game.players[1].LastAction)

	a.Equal(1450, game.players[2].Stack)
	a.Equal(50, game.players[2].Bet)
	a.Equal("BB", game.players[2].LastAction)

	a.Equal(75, hand.Pot())
	a.Equal(50, hand.CurrentBet())
	a.Equal(3, hand.CurrentActor())
	a.Equal(PreFlop, hand.Street())

	for _, p := range game.players {
		a.Len(p.HoleCards, 2)
		a.True(p.InHand)
	}

	a.Equal(52-8, hand.deck.CardsLeft())
}

func TestHand_preFlopCallsToFlop(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	callAndAdvance := func(t *testing.T, seat, wantPot int) {
		t.Helper()

		a.Equal(seat, hand.CurrentActor())
		a.Equal(ResultApplied, hand.Apply(seat, CheckOrCallAction()))
		a.Equal(wantPot, hand.Pot())
		hand.AdvanceTurn()
	}

	a.False(hand.IsRoundComplete())

	callAndAdvance(t, 3, 125)
	a.Equal(50, game.players[3].Bet)
	a.Equal("CALL", game.players[3].LastAction)
	a.False(hand.IsRoundComplete())

	callAndAdvance(t, 0, 175)
	a.False(hand.IsRoundComplete())

	// small blind completes to 50; the big blind already sits at 50
	callAndAdvance(t, 1, 200)
	a.True(hand.IsRoundComplete())

	a.NoError(hand.AdvanceStreet())
	a.Equal(Flop, hand.Street())
	a.Len(hand.Community(), 3)
	a.Equal(0, hand.CurrentBet())
	a.Equal(200, hand.Pot())
	for _, p := range game.players {
		a.Equal(0, p.Bet)
		a.False(p.acted)
	}

	// post-flop action starts left of the button
	a.Equal(1, hand.CurrentActor())
}

func TestHand_checkLabel(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	for _, seat := range []int{0, 1, 2} {
		a.Equal(seat, hand.CurrentActor())
		hand.Apply(seat, CheckOrCallAction())
		hand.AdvanceTurn()
	}

	a.NoError(hand.AdvanceStreet())

	before := game.players[1].Stack
	a.Equal(ResultApplied, hand.Apply(1, CheckOrCallAction()))
	a.Equal("CHECK", game.players[1].LastAction)
	a.Equal(before, game.players[1].Stack, "no chips move on a check")
}

func TestHand_raiseReopensRound(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	a.Equal(ResultApplied, hand.Apply(3, RaiseAction(150)))
	a.Equal(150, game.players[3].Bet)
	a.Equal(150, hand.CurrentBet())
	a.Equal("RAISE", game.players[3].LastAction)
	a.Equal(75+150, hand.Pot())

	// the raise reopens the round for everyone else
	a.True(game.players[3].acted)
	a.False(game.players[0].acted)
	a.False(game.players[1].acted)
	a.False(game.players[2].acted)
	a.False(hand.IsRoundComplete())
}

func TestHand_raiseClampedUpward(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	// a raise below the current bet silently becomes a call of 50
	a.Equal(ResultApplied, hand.Apply(3, RaiseAction(10)))
	a.Equal(50, game.players[3].Bet)
	a.Equal(50, hand.CurrentBet())

	// the big blind's acted flag is untouched: the bet did not increase
	a.True(game.players[2].acted)
}

func TestHand_raiseWithoutAmountIgnored(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	a.Equal(ResultIgnored, hand.Apply(3, Action{Kind: ActionRaise}))
	a.Equal(75, hand.Pot())
	a.Equal(1500, game.players[3].Stack)
	a.Equal(3, hand.CurrentActor())
}

func TestHand_allInForLess(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	game.players[3].Stack = 30

	hand, err := game.StartHand()
	a.NoError(err)

	// seat 3 calls 50 with a 30 stack and is all-in for less
	a.Equal(ResultApplied, hand.Apply(3, CheckOrCallAction()))
	a.Equal(0, game.players[3].Stack)
	a.Equal(30, game.players[3].Bet)
	a.Equal(75+30, hand.Pot())
	a.Equal(50, hand.CurrentBet())
}

func TestHand_allInUnderRaise(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	game.players[3].Stack = 80

	hand, err := game.StartHand()
	a.NoError(err)

	// seat 3 tries to raise to 200 but only has 80: under-raise all-in
	a.Equal(ResultApplied, hand.Apply(3, RaiseAction(200)))
	a.Equal(0, game.players[3].Stack)
	a.Equal(80, game.players[3].Bet)
	a.Equal(80, hand.CurrentBet())

	// the bet increased, so the round reopens
	a.False(game.players[2].acted)
}

func TestHand_illegalActionsAreNoOps(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	before := hand.Pot()

	// out of turn
	a.Equal(ResultIgnored, hand.Apply(0, CheckOrCallAction()))
	a.Equal(0, game.players[0].Bet)

	// out of range
	a.Equal(ResultIgnored, hand.Apply(-1, FoldAction()))
	a.Equal(ResultIgnored, hand.Apply(4, FoldAction()))

	// folded seat
	a.Equal(ResultApplied, hand.Apply(3, FoldAction()))
	a.Equal(ResultIgnored, hand.Apply(3, CheckOrCallAction()))

	a.Equal(before, hand.Pot())
}

func TestHand_advanceTurnSkipsFolded(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 4, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	a.Equal(ResultApplied, hand.Apply(3, FoldAction()))
	hand.AdvanceTurn()
	a.Equal(0, hand.CurrentActor())

	a.Equal(ResultApplied, hand.Apply(0, FoldAction()))
	hand.AdvanceTurn()
	a.Equal(1, hand.CurrentActor())
}

func TestHand_isRoundCompleteOnFoldOut(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	a.False(hand.IsRoundComplete())

	hand.Apply(0, FoldAction())
	hand.AdvanceTurn()
	a.False(hand.IsRoundComplete())

	hand.Apply(1, FoldAction())
	a.True(hand.IsRoundComplete(), "one player left in hand")
}

func TestHand_foldOutAwardsPot(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, 1)
	hand, err := game.StartHand()
	a.NoError(err)

	hand.Apply(0, FoldAction())
	hand.AdvanceTurn()
	hand.Apply(1, FoldAction())

	a.True(hand.IsRoundComplete())
	a.NoError(hand.AdvanceStreet())

	a.True(hand.Settled())
	a.Equal(0, hand.Pot())
	// the big blind wins the blinds back
	a.Equal(1525, game.players[2].Stack)

	// chips are conserved
	total := 0
	for _, p := range game.players {
		total += p.Stack
	}
	a.Equal(3*1500, total)
}

func TestHand_streetProgression(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, 2)
	hand, err := game.StartHand()
	a.NoError(err)

	playRound := func(t *testing.T) {
		t.Helper()

		for !hand.IsRoundComplete() {
			hand.Apply(hand.CurrentActor(), CheckOrCallAction())
			hand.AdvanceTurn()
		}
	}

	a.Equal(PreFlop, hand.Street())
	playRound(t)

	a.NoError(hand.AdvanceStreet())
	a.Equal(Flop, hand.Street())
	a.Len(hand.Community(), 3)
	playRound(t)

	a.NoError(hand.AdvanceStreet())
	a.Equal(Turn, hand.Street())
	a.Len(hand.Community(), 4)
	playRound(t)

	a.NoError(hand.AdvanceStreet())
	a.Equal(River, hand.Street())
	a.Len(hand.Community(), 5)
	playRound(t)

	a.NoError(hand.AdvanceStreet())
	a.Equal(Showdown, hand.Street())
	a.True(hand.Settled())
	a.Equal(0, hand.Pot())

	total := 0
	for _, p := range game.players {
		total += p.Stack
	}
	a.Equal(3*1500, total)
}

// settlement with hand-picked cards

func newRiggedHand(players []*Player, button int, board string) *Hand {
	community := deck.Hand(deck.CardsFromString(board))

	return &Hand{
		log:       logrus.StandardLogger(),
		players:   players,
		button:    button,
		community: community,
	}
}

func riggedPlayer(seat int, cards string) *Player {
	return &Player{
		Seat:      seat,
		Name:      "p",
		InHand:    true,
		HoleCards: deck.Hand(deck.CardsFromString(cards)),
	}
}

func TestHand_settleBestHandWins(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		riggedPlayer(0, "Ah,Ad"), // trip aces
		riggedPlayer(1, "7c,8c"), // straight
		riggedPlayer(2, "2h,3d"), // board pair only
	}

	hand := newRiggedHand(players, 0, "9s,Tc,Jd,2c,As")
	hand.pot = 300

	a.NoError(hand.settle())
	a.True(hand.Settled())
	a.Equal(300, players[1].Stack)
	a.Equal(0, players[0].Stack)
	a.Equal(0, players[2].Stack)
	a.True(hand.showdown)
}

func TestHand_settleSplitsTies(t *testing.T) {
	a := assert.New(t)

	// both hole hands play the board straight
	players := []*Player{
		riggedPlayer(0, "2h,3d"),
		riggedPlayer(1, "2s,3c"),
		riggedPlayer(2, "Ah,Ad"),
	}
	players[2].InHand = false

	hand := newRiggedHand(players, 0, "9s,Tc,Jd,Qc,Ks")
	hand.pot = 301

	a.NoError(hand.settle())

	// 301 splits 150/150 with the odd chip going to the first winner
	// after the button
	a.Equal(151, players[1].Stack)
	a.Equal(150, players[0].Stack)
	a.Equal(0, players[2].Stack)
	a.Equal(0, hand.Pot())
}

func TestHand_settleFoldedPlayerCannotWin(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		riggedPlayer(0, "Ah,Ad"),
		riggedPlayer(1, "2c,7d"),
	}
	players[0].InHand = false

	hand := newRiggedHand(players, 0, "9s,Tc,Jd,2h,3s")
	hand.pot = 100

	a.NoError(hand.settle())
	a.Equal(100, players[1].Stack)
	a.Equal(0, players[0].Stack)
	// a single contender wins without a showdown reveal
	a.False(hand.showdown)
}

func TestHand_settleRunsOutAbandonedBoard(t *testing.T) {
	a := assert.New(t)

	game := newTestGame(t, 3, 3)
	hand, err := game.StartHand()
	a.NoError(err)

	for !hand.IsRoundComplete() {
		hand.Apply(hand.CurrentActor(), CheckOrCallAction())
		hand.AdvanceTurn()
	}
	a.NoError(hand.AdvanceStreet())
	a.Equal(Flop, hand.Street())

	// the driver gives up mid-hand; EndHand still settles
	a.NoError(game.EndHand())
	a.Nil(game.Hand())

	total := 0
	for _, p := range game.players {
		total += p.Stack
	}
	a.Equal(3*1500, total)
}

func TestHand_applyAfterSettleIgnored(t *testing.T) {
	a := assert.New(t)

	players := []*Player{
		riggedPlayer(0, "Ah,Ad"),
		riggedPlayer(1, "2c,7d"),
	}
	players[1].InHand = false

	hand := newRiggedHand(players, 0, "9s,Tc,Jd,2h,3s")
	hand.pot = 100
	a.NoError(hand.settle())

	a.Equal(ResultIgnored, hand.Apply(0, CheckOrCallAction()))
	a.NoError(hand.AdvanceStreet())
	a.Equal(100, players[0].Stack)
}
