// Package server exposes host metrics over HTTP.
//
// Query endpoints under /v1 return the monitor's fixed JSON shapes:
// /v1/system, /v1/memory, /v1/disks, /v1/cpu, plus /v1/report for a
// whole-host capture and /v1/stream for a websocket push feed. Operational
// endpoints are /healthz, /readyz, and /metrics (Prometheus).
//
// API requests pass through a middleware chain: Prometheus RED metrics,
// request ID propagation, panic recovery, token-bucket rate limiting, and
// debug request logging.
//
//	cfg, err := server.LoadConfig(path)
//	if err != nil {
//		return err
//	}
//	s := server.New(
//		server.WithConfig(cfg),
//		server.WithVersion(version.Version),
//	)
//	return s.Run(ctx)
package server
