// Command deal runs scripted hands in a terminal for eyeballing the engine.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/poker/holdem"
)

var (
	seats     = flag.Int("seats", 4, "number of seats at the table")
	bigBlind  = flag.Int("big-blind", 50, "the big blind")
	stack     = flag.Int("stack", 1500, "the starting stack")
	hands     = flag.Int("hands", 1, "number of hands to deal")
	seed      = flag.Int64("seed", 0, "deck seed (0 uses the current time)")
	raiseOdds = flag.Int("raise-odds", 5, "a player raises one time in N (0 disables raises)")
)

func main() {
	flag.Parse()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	deckSeed := *seed
	if deckSeed == 0 {
		deckSeed = time.Now().UnixNano()
	}

	gen := rng.NewSeeded(deckSeed)

	names := make([]string, *seats)
	for i := range names {
		names[i] = util.GetRandomName(gen)
	}

	game, err := holdem.NewGame(logrus.StandardLogger(), gen, holdem.Options{
		Seats:         *seats,
		BigBlind:      *bigBlind,
		StartingStack: *stack,
		Names:         names,
	})
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	logrus.WithField("seed", deckSeed).Info("dealing")

	for i := 0; i < *hands; i++ {
		if err := playHand(game, gen); err != nil {
			logrus.WithError(err).Fatal("hand failed")
		}
	}

	for _, p := range game.Players() {
		logrus.WithFields(logrus.Fields{
			"seat":  p.Seat,
			"name":  p.Name,
			"stack": p.Stack,
		}).Info("final stack")
	}
}

func playHand(game *holdem.Game, gen rng.Generator) error {
	hand, err := game.StartHand()
	if err != nil {
		return err
	}

	street := hand.Street()
	logStreet(hand)

	for !hand.Settled() {
		hand.Apply(hand.CurrentActor(), pickAction(hand, gen))
		hand.AdvanceTurn()

		if hand.IsRoundComplete() {
			if err := hand.AdvanceStreet(); err != nil {
				return err
			}
		}

		if s := hand.Street(); s != street {
			street = s
			logStreet(hand)
		}
	}

	return game.EndHand()
}

// pickAction mostly calls, with the occasional min-raise thrown in.
func pickAction(hand *holdem.Hand, gen rng.Generator) holdem.Action {
	if *raiseOdds > 0 && gen.Intn(*raiseOdds) == 0 {
		return holdem.RaiseAction(hand.CurrentBet() + *bigBlind)
	}

	return holdem.CheckOrCallAction()
}

func logStreet(hand *holdem.Hand) {
	snapshot := hand.Snapshot(holdem.OmniscientViewer)

	log := logrus.WithFields(logrus.Fields{
		"street":    snapshot.Street,
		"community": snapshot.Community,
		"pot":       snapshot.Pot,
	})

	for _, seat := range snapshot.Seats {
		if seat.InHand {
			log = log.WithField(seat.Name, seat.Cards)
		}
	}

	log.Info("dealt")
}
