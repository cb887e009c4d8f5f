package monitor

// Provider abstracts access to the host's system-information facility.
// Two implementations exist: the gopsutil-backed native provider and a
// sandbox provider for environments without OS introspection privileges.
// Providers never fail; where the host withholds data they substitute the
// documented fallback values so every read returns a structurally valid
// result.
type Provider interface {
	// Refresh re-reads all retained host state.
	Refresh()

	// RefreshMemory re-reads memory state only.
	RefreshMemory()

	// RefreshCPU re-reads per-core CPU state only.
	RefreshCPU()

	// System returns the retained system-wide facts.
	System() SystemInfo

	// Memory returns the retained memory facts.
	Memory() MemoryInfo

	// Disks enumerates mounted volumes fresh on every call, in
	// host-enumeration order.
	Disks() []DiskInfo

	// Cores returns the retained per-core stats, in host-enumeration order.
	Cores() []CPUInfo
}

const (
	sandboxPlatform = "Sandbox"
	sandboxHostname = "sandbox"
)

// sandboxProvider serves environments without OS access. Every read returns
// the documented placeholder values and refreshes are no-ops.
type sandboxProvider struct {
	platform string
	hostname string
}

func newSandboxProvider(platform, hostname string) *sandboxProvider {
	if platform == "" {
		platform = sandboxPlatform
	}
	if hostname == "" {
		hostname = sandboxHostname
	}
	return &sandboxProvider{platform: platform, hostname: hostname}
}

func (p *sandboxProvider) Refresh()       {}
func (p *sandboxProvider) RefreshMemory() {}
func (p *sandboxProvider) RefreshCPU()    {}

func (p *sandboxProvider) System() SystemInfo {
	return SystemInfo{
		OS:            p.platform,
		OSVersion:     "N/A",
		KernelVersion: "N/A",
		Hostname:      p.hostname,
	}
}

func (p *sandboxProvider) Memory() MemoryInfo {
	return MemoryInfo{}
}

func (p *sandboxProvider) Disks() []DiskInfo {
	return []DiskInfo{}
}

func (p *sandboxProvider) Cores() []CPUInfo {
	return []CPUInfo{}
}
