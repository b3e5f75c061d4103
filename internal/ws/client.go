package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"talkReserve/internal/lib/logger/sl"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 64
)

// Envelope is the wire frame for both directions: an event name plus
// an event-specific payload.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Client is one connected session. The admin flag is server-side
// session state: it is set only by a successful login and checked on
// every privileged command.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	log  *slog.Logger

	mu      sync.Mutex
	admin   bool
	dropped bool
}

func newClient(hub *Hub, conn *websocket.Conn, log *slog.Logger) *Client {
	id := uuid.NewString()

	return &Client{
		id:   id,
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		done: make(chan struct{}),
		log:  log.With(slog.String("client_id", id)),
	}
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) IsAdmin() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.admin
}

func (c *Client) setAdmin(admin bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.admin = admin
}

// drop marks the client as removed from the hub and wakes its writer.
// The send channel is never closed: the reader goroutine may still be
// inside a handler and reply through Send concurrently.
func (c *Client) drop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dropped {
		return
	}

	c.dropped = true
	close(c.done)
}

func (c *Client) isDropped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dropped
}

// Send queues one event for this client only. A client whose queue is
// full has the message dropped; broadcasts must never block on a slow
// reader. Sending to a dropped client is a no-op.
func (c *Client) Send(event string, payload any) {
	if c.isDropped() {
		return
	}

	b, err := json.Marshal(outbound{Event: event, Data: payload})
	if err != nil {
		c.log.Error("failed to marshal event", slog.String("event", event), sl.Err(err))
		return
	}

	select {
	case c.send <- b:
	default:
		c.log.Warn("send queue full, dropping message", slog.String("event", event))
	}
}

// readPump feeds inbound frames to the dispatcher until the connection
// drops. It runs as the connection's single reader goroutine.
func (c *Client) readPump(dispatcher *Dispatcher) {
	defer func() {
		// The hub may already have dropped this client (slow consumer,
		// shutdown); in that case nobody is draining unregister.
		select {
		case c.hub.unregister <- c:
		case <-c.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn("unexpected close", sl.Err(err))
			}

			return
		}

		dispatcher.Dispatch(c, raw)
	}
}

// writePump drains the send queue and keeps the connection alive with
// pings. It runs as the connection's single writer goroutine.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
