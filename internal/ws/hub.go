// Package ws is the bidirectional event channel: a gorilla/websocket
// hub tracking connected sessions plus the dispatcher that routes
// inbound events to the coordinator.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"talkReserve/internal/lib/logger/sl"
)

// Hub is the session registry. It owns the client set from a single
// goroutine; registration, removal, and broadcast fan-out all go
// through its channels.
type Hub struct {
	log        *slog.Logger
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 256),
	}
}

// Run owns the client set until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.log.Info("client connected",
				slog.String("client_id", client.ID()),
				slog.Int("clients", len(h.clients)),
			)
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.drop()
				h.log.Info("client disconnected",
					slog.String("client_id", client.ID()),
					slog.Int("clients", len(h.clients)),
				)
			}
		case msg := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- msg:
				default:
					// Slow consumer: drop it rather than stall
					// everyone else.
					delete(h.clients, client)
					client.drop()
				}
			}
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				client.drop()
			}

			return
		}
	}
}

// Broadcast queues one event for every connected client.
func (h *Hub) Broadcast(event string, payload any) {
	b, err := json.Marshal(outbound{Event: event, Data: payload})
	if err != nil {
		h.log.Error("failed to marshal broadcast", slog.String("event", event), sl.Err(err))
		return
	}

	h.broadcast <- b
}
