// Package report captures all four host metric views in one locked pass so
// concurrent callers can share a single Monitor.
package report

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/softwarewrighter/system-monitor/pkg/monitor"
)

// Report is a whole-host capture: the four metric views read back-to-back
// after one refresh, with capture metadata.
type Report struct {
	CapturedAt time.Time `json:"captured_at" yaml:"captured_at"`
	Version    string    `json:"version,omitempty" yaml:"version,omitempty"`

	System monitor.SystemInfo `json:"system" yaml:"system"`
	Memory monitor.MemoryInfo `json:"memory" yaml:"memory"`
	Disks  []monitor.DiskInfo `json:"disks" yaml:"disks"`
	Cores  []monitor.CPUInfo  `json:"cores" yaml:"cores"`
}

// Collector produces Reports from a shared Monitor. The Monitor itself is
// not thread-safe; Collector serializes all access with a mutex, which makes
// Collect safe to call from multiple goroutines.
type Collector struct {
	mu      sync.Mutex
	monitor *monitor.Monitor
	version string
}

// Option configures a Collector.
type Option func(*Collector)

// WithVersion records the monitor version in each report.
func WithVersion(v string) Option {
	return func(c *Collector) {
		c.version = v
	}
}

// NewCollector creates a Collector over the given Monitor. A nil Monitor is
// replaced with a default native one.
func NewCollector(m *monitor.Monitor, opts ...Option) *Collector {
	c := &Collector{monitor: m}
	for _, opt := range opts {
		opt(c)
	}
	if c.monitor == nil {
		c.monitor = monitor.New()
	}
	return c
}

// Collect refreshes the host state and reads all four views under one lock,
// so no other Collect interleaves between the reads. The individual queries
// never fail; the only error path is context cancellation before the
// capture starts.
func (c *Collector) Collect(ctx context.Context) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		reportCollectionDuration.Observe(time.Since(start).Seconds())
		reportCollectionTotal.Inc()
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	slog.Debug("collecting host report")

	rep := &Report{
		CapturedAt: time.Now().UTC(),
		Version:    c.version,
		System:     c.monitor.SystemInfo(),
		Memory:     c.monitor.MemoryInfo(),
		Disks:      c.monitor.ListDisks(),
		Cores:      c.monitor.CPUInfo(),
	}

	slog.Debug("host report collected",
		"disks", len(rep.Disks),
		"cores", len(rep.Cores),
		"duration", time.Since(start).String(),
	)

	return rep, nil
}

// Locked single-view reads for callers that need one metric without a full
// report. Each takes the same lock as Collect.

// System returns the system view.
func (c *Collector) System() monitor.SystemInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitor.SystemInfo()
}

// Memory returns the memory view.
func (c *Collector) Memory() monitor.MemoryInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitor.MemoryInfo()
}

// Disks returns the mounted volume views.
func (c *Collector) Disks() []monitor.DiskInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitor.ListDisks()
}

// Cores returns the per-core views.
func (c *Collector) Cores() []monitor.CPUInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitor.CPUInfo()
}
