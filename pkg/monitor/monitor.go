package monitor

import "encoding/json"

// Monitor is the caller-owned entry point for host metric queries. Construct
// one with New and reuse it; construction performs an initial full refresh.
//
// Monitor is not safe for concurrent use. Callers sharing one instance
// across goroutines must serialize access with a lock, or give each
// goroutine its own instance.
type Monitor struct {
	provider Provider
}

// Option configures a Monitor during construction.
type Option func(*Monitor)

// WithProvider overrides the host data source. Useful for tests.
func WithProvider(p Provider) Option {
	return func(m *Monitor) {
		m.provider = p
	}
}

// WithSandbox selects the no-access provider, which returns the documented
// placeholder values for every query.
func WithSandbox() Option {
	return func(m *Monitor) {
		m.provider = newSandboxProvider("", "")
	}
}

// WithSandboxIdentity selects the no-access provider with custom platform
// and hostname placeholders.
func WithSandboxIdentity(platform, hostname string) Option {
	return func(m *Monitor) {
		m.provider = newSandboxProvider(platform, hostname)
	}
}

// New creates a Monitor. Without options the native gopsutil-backed provider
// is used and fully refreshed once.
func New(opts ...Option) *Monitor {
	m := &Monitor{}
	for _, opt := range opts {
		opt(m)
	}
	if m.provider == nil {
		m.provider = newNativeProvider()
	}
	return m
}

// Refresh re-reads all metrics from the host. Subsequent reads reflect the
// refreshed state. On a sandbox provider this is a no-op.
func (m *Monitor) Refresh() {
	m.provider.Refresh()
}

// SystemInfo performs a full refresh and returns the system snapshot.
// The refresh is broader than strictly needed for these fields; callers
// depend on the observable behavior so it is kept.
func (m *Monitor) SystemInfo() SystemInfo {
	m.provider.Refresh()
	return m.provider.System()
}

// MemoryInfo refreshes memory state only and returns the memory snapshot.
func (m *Monitor) MemoryInfo() MemoryInfo {
	m.provider.RefreshMemory()
	return m.provider.Memory()
}

// ListDisks enumerates mounted volumes fresh on every call and returns one
// snapshot per volume in host-enumeration order.
func (m *Monitor) ListDisks() []DiskInfo {
	return m.provider.Disks()
}

// CPUInfo refreshes per-core stats only and returns one snapshot per logical
// core in host-enumeration order.
func (m *Monitor) CPUInfo() []CPUInfo {
	m.provider.RefreshCPU()
	return m.provider.Cores()
}

// JSON binding surface. Each method returns a compact UTF-8 JSON document
// with the fixed field shapes; serialization failure degrades to an empty
// object or array literal, never an error.

// SystemInfoJSON returns the system snapshot as a JSON object string.
func (m *Monitor) SystemInfoJSON() string {
	return marshalObject(m.SystemInfo())
}

// MemoryInfoJSON returns the memory snapshot as a JSON object string.
func (m *Monitor) MemoryInfoJSON() string {
	return marshalObject(m.MemoryInfo())
}

// ListDisksJSON returns the disk snapshots as a JSON array string.
func (m *Monitor) ListDisksJSON() string {
	return marshalArray(m.ListDisks())
}

// CPUInfoJSON returns the per-core snapshots as a JSON array string.
func (m *Monitor) CPUInfoJSON() string {
	return marshalArray(m.CPUInfo())
}

func marshalObject(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func marshalArray[T any](v []T) string {
	if len(v) == 0 {
		return "[]"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}
