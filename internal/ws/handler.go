package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"talkReserve/internal/events"
	"talkReserve/internal/lib/logger/sl"
)

// NewHandler upgrades HTTP requests to WebSocket sessions. Every new
// session immediately receives the current snapshots plus the
// connection-established signal, mirroring what broadcasts will keep
// delivering afterwards.
func NewHandler(log *slog.Logger, hub *Hub, dispatcher *Dispatcher) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// The original server ran with CORS open to any origin.
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "ws.handler.New"

		log := log.With(slog.String("op", op))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("failed to upgrade connection", sl.Err(err))
			return
		}

		client := newClient(hub, conn, log)
		hub.register <- client

		client.Send(events.StateUpdated, dispatcher.coord.Talks())
		client.Send(events.ReservationsUpdated, dispatcher.coord.Reservations())
		client.Send(events.SystemStarted, nil)

		go client.writePump()
		go client.readPump(dispatcher)
	}
}
