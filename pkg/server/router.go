package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/softwarewrighter/system-monitor/pkg/serializer"
)

// setupRoutes configures all HTTP routes and middleware.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler
	mux.HandleFunc("/", s.handleIndex)

	// System endpoints (no rate limiting)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("/v1/system", s.withMiddleware(s.handleSystem))
	mux.HandleFunc("/v1/memory", s.withMiddleware(s.handleMemory))
	mux.HandleFunc("/v1/disks", s.withMiddleware(s.handleDisks))
	mux.HandleFunc("/v1/cpu", s.withMiddleware(s.handleCPU))
	mux.HandleFunc("/v1/report", s.withMiddleware(s.handleReport))
	mux.HandleFunc("/v1/stream", s.withMiddleware(s.handleStream))

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
	)

	resp := struct {
		Name      string   `json:"name"`
		Version   string   `json:"version"`
		Ready     bool     `json:"ready"`
		Timestamp string   `json:"timestamp"`
		Routes    []string `json:"routes"`
	}{
		Name:      s.config.Name,
		Version:   s.config.Version,
		Ready:     s.isReady(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Routes: []string{
			"GET /v1/system",
			"GET /v1/memory",
			"GET /v1/disks",
			"GET /v1/cpu",
			"GET /v1/report",
			"GET /v1/stream",
			"GET /healthz",
			"GET /readyz",
			"GET /metrics",
		},
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
