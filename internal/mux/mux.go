package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"holdem-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	table   *room.Table
}

// NewMux returns a new HTTP mux for the table
func NewMux(version string, table *room.Table) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		table:   table,
	}

	this.HandleFunc("/health", this.getHealth()).Methods(http.MethodGet)
	this.HandleFunc("/game", this.getGame()).Methods(http.MethodGet)
	this.HandleFunc("/game/hand", this.postGameHand()).Methods(http.MethodPost)
	this.HandleFunc("/game/hand", this.deleteGameHand()).Methods(http.MethodDelete)
	this.HandleFunc("/game/action", this.postGameAction()).Methods(http.MethodPost)
	this.HandleFunc("/game/ws", this.getGameWS()).Methods(http.MethodGet)

	return this
}
