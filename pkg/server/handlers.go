package server

import (
	"net/http"

	"github.com/softwarewrighter/system-monitor/pkg/errors"
	"github.com/softwarewrighter/system-monitor/pkg/serializer"
)

// requireGet rejects non-GET methods. All query endpoints are read-only.
func (s *Server) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return false
	}
	return true
}

// handleSystem handles GET /v1/system.
func (s *Server) handleSystem(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.reports.System())
}

// handleMemory handles GET /v1/memory.
func (s *Server) handleMemory(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.reports.Memory())
}

// handleDisks handles GET /v1/disks.
func (s *Server) handleDisks(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.reports.Disks())
}

// handleCPU handles GET /v1/cpu.
func (s *Server) handleCPU(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, s.reports.Cores())
}

// handleReport handles GET /v1/report.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	rep, err := s.reports.Collect(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusServiceUnavailable, errors.ErrCodeUnavailable,
			"Report collection cancelled", true, nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}
