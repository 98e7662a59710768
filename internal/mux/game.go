package mux

import (
	"errors"
	"net/http"
	"strconv"

	"holdem-server/pkg/poker/holdem"
	"holdem-server/pkg/room"
)

// viewerSeat resolves the optional ?seat= parameter. Without it the caller
// is a spectator and every hole card is masked.
func viewerSeat(r *http.Request) (int, error) {
	s := r.FormValue("seat")
	if s == "" {
		return holdem.SpectatorViewer, nil
	}

	seat, err := strconv.Atoi(s)
	if err != nil || seat < 0 {
		return 0, errors.New("seat must be a non-negative integer")
	}

	return seat, nil
}

func (m *Mux) getGame() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, err := viewerSeat(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, m.table.Snapshot(viewer))
	}
}

func (m *Mux) postGameHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.table.StartHand(); err != nil {
			writeJSONError(w, http.StatusConflict, err)
			return
		}

		writeJSON(w, http.StatusCreated, m.table.Snapshot(holdem.SpectatorViewer))
	}
}

func (m *Mux) deleteGameHand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := m.table.EndHand(); err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, m.table.Snapshot(holdem.SpectatorViewer))
	}
}

type actionRequest struct {
	Seat   int    `json:"seat"`
	Action string `json:"action"`
	Amount int    `json:"amount"`
}

type actionResponse struct {
	Result   string           `json:"result"`
	Snapshot *holdem.Snapshot `json:"snapshot"`
}

func (m *Mux) postGameAction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload actionRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		kind, err := holdem.ActionKindFromString(payload.Action)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		result, err := m.table.Act(payload.Seat, holdem.Action{Kind: kind, RaiseTo: payload.Amount})
		if err != nil {
			if err == room.ErrNoHandInProgress {
				writeJSONError(w, http.StatusConflict, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, actionResponse{
			Result:   result.String(),
			Snapshot: m.table.Snapshot(payload.Seat),
		})
	}
}
