package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/Nischal699/spotify-api/internal/domain"
)

const sendBufferSize = 256

// Client is one live websocket session for a user.
type Client struct {
	SessionID string // for log correlation only
	UserID    int64
	Hub       *Hub
	Conn      *websocket.Conn
	Send      chan []byte

	mu     sync.Mutex
	closed bool
}

// readPump reads inbound events and feeds them to the hub one at a time, so
// events on a single connection are processed in strict arrival order.
func (c *Client) readPump() {
	defer func() {
		c.Hub.disconnect(c)
		c.Conn.Close()
	}()

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("readPump error (user %d, session %s): %v", c.UserID, c.SessionID, err)
			}
			break
		}

		var event domain.ClientEvent
		if err := json.Unmarshal(raw, &event); err != nil {
			// Unparseable frames are a local error, not a fatal one.
			c.sendError("invalid event payload")
			continue
		}

		c.Hub.handleEvent(c, &event)
	}
}

// writePump drains the Send channel into the websocket connection.
func (c *Client) writePump() {
	defer c.Conn.Close()

	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("writePump error (user %d, session %s): %v", c.UserID, c.SessionID, err)
			return
		}
	}
}

// push queues a payload for delivery without blocking. It reports false when
// the session is closed or its buffer is full.
func (c *Client) push(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// close shuts the send channel exactly once. Pushes after close are dropped.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// sendError delivers a local error notice to this client only.
func (c *Client) sendError(message string) {
	payload, err := json.Marshal(domain.ErrorEvent{Type: domain.EventError, Error: message})
	if err != nil {
		return
	}
	if !c.push(payload) {
		log.Printf("could not send error notice to user %d (session %s)", c.UserID, c.SessionID)
	}
}
