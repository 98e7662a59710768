package holdem

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"holdem-server/internal/rng"
)

var errHandInProgress = errors.New("a hand is already in progress")

// Options configures a table session
type Options struct {
	Seats         int
	BigBlind      int
	StartingStack int

	// Names optionally overrides the default seat labels.
	// Must be empty or match Seats in length.
	Names []string
}

// DefaultOptions returns the default table options
func DefaultOptions() Options {
	return Options{
		Seats:         8,
		BigBlind:      50,
		StartingStack: 1500,
	}
}

// Game is a table session: the persistent roster and button position across
// successive hands. It owns zero or one active Hand.
type Game struct {
	log     logrus.FieldLogger
	options Options
	gen     rng.Generator

	players   []*Player
	button    int
	handCount int
	hand      *Hand
}

// NewGame returns a new table session
func NewGame(log logrus.FieldLogger, gen rng.Generator, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	players := make([]*Player, opts.Seats)
	for i := range players {
		name := fmt.Sprintf("Seat %d", i+1)
		if len(opts.Names) > 0 {
			name = opts.Names[i]
		}

		players[i] = &Player{
			Seat:  i,
			Name:  name,
			Stack: opts.StartingStack,
		}
	}

	return &Game{
		log:     log,
		options: opts,
		gen:     gen,
		players: players,
	}, nil
}

func validateOptions(opts Options) error {
	if opts.Seats < 2 {
		return errors.New("there must be at least two seats")
	}

	// two hole cards per seat plus the board must fit in one deck
	if 2*opts.Seats+5 > 52 {
		return fmt.Errorf("%d seats cannot be dealt from a 52-card deck", opts.Seats)
	}

	if opts.BigBlind < 2 {
		return errors.New("big blind must be at least 2")
	}

	if opts.StartingStack < opts.BigBlind {
		return errors.New("starting stack must cover the big blind")
	}

	if len(opts.Names) > 0 && len(opts.Names) != opts.Seats {
		return errors.New("names must match the number of seats")
	}

	return nil
}

// StartHand deals a new hand against the current button position
func (g *Game) StartHand() (*Hand, error) {
	if g.hand != nil && !g.hand.Settled() {
		return nil, errHandInProgress
	}

	g.handCount++
	log := g.log.WithField("hand", g.handCount)

	hand, err := newHand(log, g.players, g.button, g.options.BigBlind, g.gen)
	if err != nil {
		return nil, err
	}

	g.hand = hand
	return hand, nil
}

// EndHand settles the active hand if it has not settled already, rotates
// the button, and releases the hand. Stack changes were applied in place to
// the shared Player records, so nothing is copied back.
func (g *Game) EndHand() error {
	if g.hand == nil {
		return nil
	}

	if err := g.hand.settle(); err != nil {
		return err
	}

	g.hand = nil
	g.button = (g.button + 1) % len(g.players)
	return nil
}

// Hand returns the active hand, or nil between hands
func (g *Game) Hand() *Hand {
	return g.hand
}

// Players returns the persistent seat list
func (g *Game) Players() []*Player {
	return g.players
}

// Button returns the current dealer seat
func (g *Game) Button() int {
	return g.button
}

// HandNumber returns the number of hands started
func (g *Game) HandNumber() int {
	return g.handCount
}

// BigBlind returns the configured big blind
func (g *Game) BigBlind() int {
	return g.options.BigBlind
}
