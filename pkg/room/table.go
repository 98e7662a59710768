package room

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"holdem-server/pkg/poker/holdem"
)

// ErrNoHandInProgress is an error when an action arrives between hands
var ErrNoHandInProgress = errors.New("no hand in progress")

// Intent is a player message from the presentation layer
type Intent struct {
	// Action is one of start_hand, end_hand, fold, check_or_call, raise
	Action string `json:"action"`

	// Amount is the target total street bet for a raise
	Amount int `json:"amount"`
}

// Table owns one Game and serializes every mutation through a single run
// loop, so the engine never sees concurrent access. The HTTP handlers and
// the websocket clients all funnel through here.
type Table struct {
	log  logrus.FieldLogger
	game *holdem.Game

	clients map[*Client]bool
	lock    sync.RWMutex

	exec  chan func()
	close chan bool
}

// NewTable returns a new table for the game
func NewTable(log logrus.FieldLogger, game *holdem.Game) *Table {
	return &Table{
		log:     log,
		game:    game,
		clients: make(map[*Client]bool),
		exec:    make(chan func(), 256),
		close:   make(chan bool),
	}
}

// Open starts the run loop
func (t *Table) Open() {
	go t.runLoop()
}

// Shutdown terminates the run loop
func (t *Table) Shutdown() {
	close(t.close)
}

func (t *Table) runLoop() {
	t.log.Debug("table run loop started")
	for {
		select {
		case fn := <-t.exec:
			fn()
		case <-t.close:
			t.log.Debug("table run loop terminated")
			return
		}
	}
}

// do runs fn on the run loop and waits for it to finish
func (t *Table) do(fn func()) {
	done := make(chan bool)
	t.exec <- func() {
		fn()
		close(done)
	}
	<-done
}

// AddClient adds a client and pushes it a current snapshot
func (t *Table) AddClient(client *Client) {
	t.lock.Lock()
	client.table = t
	t.clients[client] = true
	t.lock.Unlock()

	t.log.WithField("client", client.String()).Debug("client connected")

	t.do(func() {
		client.Send(t.game.Snapshot(client.Seat))
	})
}

// RemoveClient removes a client
func (t *Table) RemoveClient(client *Client) {
	t.lock.Lock()
	delete(t.clients, client)
	t.lock.Unlock()

	t.log.WithField("client", client.String()).Debug("client disconnected")
}

// StartHand deals a new hand and broadcasts the result
func (t *Table) StartHand() error {
	var err error
	t.do(func() {
		_, err = t.game.StartHand()
		if err == nil {
			t.broadcast()
		}
	})

	return err
}

// EndHand settles the active hand if needed, rotates the button, and
// broadcasts the result
func (t *Table) EndHand() error {
	var err error
	t.do(func() {
		err = t.game.EndHand()
		t.broadcast()
	})

	return err
}

// Act submits one player action and drives the hand forward: the turn
// advances after an accepted action, and a completed round advances the
// street (which settles the hand once it reaches showdown or a fold-out).
func (t *Table) Act(seat int, action holdem.Action) (holdem.ApplyResult, error) {
	var result holdem.ApplyResult
	var err error

	t.do(func() {
		hand := t.game.Hand()
		if hand == nil {
			err = ErrNoHandInProgress
			return
		}

		result = hand.Apply(seat, action)
		if result == holdem.ResultIgnored {
			return
		}

		hand.AdvanceTurn()
		if hand.IsRoundComplete() {
			err = hand.AdvanceStreet()
		}

		t.broadcast()
	})

	return result, err
}

// Snapshot returns the table state as seen by the viewer seat
func (t *Table) Snapshot(viewer int) *holdem.Snapshot {
	var snapshot *holdem.Snapshot
	t.do(func() {
		snapshot = t.game.Snapshot(viewer)
	})

	return snapshot
}

// ReceivedMessage handles an intent from a websocket client
func (t *Table) ReceivedMessage(client *Client, intent *Intent) {
	log := t.log.WithFields(logrus.Fields{
		"client": client.String(),
		"action": intent.Action,
	})

	switch intent.Action {
	case "start_hand":
		if err := t.StartHand(); err != nil {
			log.WithError(err).Warn("could not start hand")
		}
		return
	case "end_hand":
		if err := t.EndHand(); err != nil {
			log.WithError(err).Warn("could not end hand")
		}
		return
	}

	kind, err := holdem.ActionKindFromString(intent.Action)
	if err != nil {
		log.WithError(err).Warn("invalid intent")
		return
	}

	result, err := t.Act(client.Seat, holdem.Action{Kind: kind, RaiseTo: intent.Amount})
	if err != nil {
		log.WithError(err).Warn("could not act")
		return
	}

	log.WithField("result", result.String()).Debug("intent handled")
}

// broadcast pushes a fresh per-viewer snapshot to every connected client.
// Must be called from the run loop.
func (t *Table) broadcast() {
	t.lock.RLock()
	defer t.lock.RUnlock()

	for client := range t.clients {
		if !client.Send(t.game.Snapshot(client.Seat)) {
			t.log.WithField("client", client.String()).Warn("dropped snapshot; send buffer full")
		}
	}
}
