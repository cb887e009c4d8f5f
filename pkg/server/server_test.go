package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/softwarewrighter/system-monitor/pkg/monitor"
	"github.com/softwarewrighter/system-monitor/pkg/report"
)

func testServer(opts ...Option) *Server {
	base := []Option{
		WithName("sysmond-test"),
		WithVersion("v0.0.0-test"),
		WithCollector(report.NewCollector(monitor.New(monitor.WithSandbox()))),
	}
	return New(append(base, opts...)...)
}

func TestNew(t *testing.T) {
	s := testServer()
	if s == nil {
		t.Fatal("expected server instance, got nil")
	}

	if s.config == nil {
		t.Error("expected config to be initialized")
	}
	if s.httpServer == nil {
		t.Error("expected httpServer to be initialized")
	}
	if s.rateLimiter == nil {
		t.Error("expected rateLimiter to be initialized")
	}
	if s.reports == nil {
		t.Error("expected collector to be initialized")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}
}

func TestReadyEndpoint(t *testing.T) {
	s := testServer()

	tests := []struct {
		name           string
		ready          bool
		expectedStatus int
	}{
		{name: "ready state", ready: true, expectedStatus: http.StatusOK},
		{name: "not ready state", ready: false, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.setReady(tt.ready)

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()

			s.handleReady(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestQueryEndpoints(t *testing.T) {
	s := testServer()
	handler := s.setupRoutes()

	tests := []struct {
		path string
		keys []string
	}{
		{path: "/v1/system", keys: []string{"os", "os_version", "kernel_version", "hostname", "cpu_count", "total_memory", "used_memory", "uptime"}},
		{path: "/v1/memory", keys: []string{"total", "used", "available", "usage_percent"}},
		{path: "/v1/report", keys: []string{"captured_at", "system", "memory", "disks", "cores"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
			}

			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			for _, key := range tt.keys {
				if _, ok := body[key]; !ok {
					t.Errorf("expected key %q in response: %v", key, body)
				}
			}
		})
	}
}

func TestListEndpointsReturnEmptyArraysOnSandbox(t *testing.T) {
	s := testServer()
	handler := s.setupRoutes()

	for _, path := range []string{"/v1/disks", "/v1/cpu"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var body []any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected JSON array, got %q: %v", w.Body.String(), err)
			}
			if len(body) != 0 {
				t.Errorf("expected empty array, got %v", body)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	s := testServer()
	handler := s.setupRoutes()

	req := httptest.NewRequest(http.MethodPost, "/v1/system", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("invalid error response: %v", err)
	}
	if errResp.Code != "METHOD_NOT_ALLOWED" {
		t.Errorf("expected METHOD_NOT_ALLOWED, got %s", errResp.Code)
	}
	if errResp.RequestID == "" {
		t.Error("expected request ID in error response")
	}
}

func TestIndexEndpoint(t *testing.T) {
	s := testServer()
	s.setReady(true)
	handler := s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Name    string   `json:"name"`
		Version string   `json:"version"`
		Ready   bool     `json:"ready"`
		Routes  []string `json:"routes"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Name != "sysmond-test" || !body.Ready || len(body.Routes) == 0 {
		t.Errorf("unexpected index response: %+v", body)
	}
}

func TestIndexNotFound(t *testing.T) {
	s := testServer()
	handler := s.setupRoutes()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}
