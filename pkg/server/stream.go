package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const minStreamInterval = 250 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleStream handles GET /v1/stream: upgrades to a websocket and pushes a
// full host report on every interval tick until the client disconnects.
// The interval defaults to the configured stream interval and can be
// overridden with an ?interval= query parameter (Go duration syntax).
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	interval := s.config.StreamInterval
	if raw := r.URL.Query().Get("interval"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d < minStreamInterval {
			http.Error(w, "invalid interval", http.StatusBadRequest)
			return
		}
		interval = d
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		slog.Debug("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	requestID := r.Context().Value(contextKeyRequestID)
	slog.Debug("stream started", "requestID", requestID, "interval", interval.String())

	// Drain client frames so close messages are processed.
	go func() {
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		rep, err := s.reports.Collect(r.Context())
		if err != nil {
			slog.Debug("stream collection cancelled", "requestID", requestID)
			return
		}
		if err := conn.WriteJSON(rep); err != nil {
			slog.Debug("stream ended", "requestID", requestID, "error", err)
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
