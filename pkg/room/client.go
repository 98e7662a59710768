package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Client is a spectator or seated player connected via websockets.
// Seat holdem.SpectatorViewer marks a spectator, who only receives masked
// snapshots.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// UUID identifies the connection in logs
	UUID string

	// Seat is the seat this connection acts for, or -1 for a spectator
	Seat int

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	send  chan interface{}
	table *Table
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, seat int) *Client {
	return &Client{
		Conn:  conn,
		UUID:  uuid.New().String(),
		Seat:  seat,
		Close: make(chan string),
		send:  make(chan interface{}, 256),
	}
}

// Send sends a message to the web client.
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the connection
func (c *Client) String() string {
	return fmt.Sprintf("%s:%d", c.UUID, c.Seat)
}

// ReceivedMessage is called when the server receives a message from a
// connected client
func (c *Client) ReceivedMessage(intent *Intent) {
	if c.table == nil {
		logrus.WithField("intent", intent).Warn("received message, but client is not at a table")
		return
	}

	c.table.ReceivedMessage(c, intent)
}
