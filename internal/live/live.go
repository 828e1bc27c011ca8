// Package live pushes document change events to connected pages over a
// websocket so every open view re-renders after a committed edit.
package live

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/gkcodebase/folio/internal/portfolio"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterRoutes mounts the live change feed.
func RegisterRoutes(r chi.Router, session *portfolio.Session) {
	r.Get("/api/live", handleLive(session))
}

func handleLive(session *portfolio.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("live: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		events, cancel := session.Subscribe()
		defer cancel()

		// Drain the connection so peer close is noticed.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						log.Printf("live: websocket read: %v", err)
					}
					return
				}
			}
		}()

		// Tell the page where the document stands right now.
		if err := conn.WriteJSON(portfolio.Event{Version: session.Version()}); err != nil {
			return
		}

		for {
			select {
			case event := <-events:
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}
