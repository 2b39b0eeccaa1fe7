package room

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a spectator or player connected over a websocket, subscribed to
// one game's state updates
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// Close carries the reason the server is closing the client
	Close chan string

	// send is a channel for sending messages to the client
	send chan interface{}

	gameID   string
	playerID string
}

// NewClient returns a new client object.
// playerID may be empty for a spectator; they get the view with all hands
// hidden
func NewClient(conn *websocket.Conn, gameID, playerID string) *Client {
	return &Client{
		Conn:     conn,
		Close:    make(chan string, 1),
		send:     make(chan interface{}, 256),
		gameID:   gameID,
		playerID: playerID,
	}
}

// evict asks the client's write loop to close the connection.
// A client already being evicted keeps its original reason
func (c *Client) evict(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// Send sends a message to the web client.
// Returns false if the client's buffer is full
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

// String returns a traceable identifier for the client
func (c *Client) String() string {
	if c.playerID == "" {
		return fmt.Sprintf("spectator:%s", c.gameID)
	}

	return fmt.Sprintf("%s:%s", c.playerID, c.gameID)
}
