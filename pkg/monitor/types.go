package monitor

// Unavailable is the literal substituted for text fields the host does not expose.
const Unavailable = "Unknown"

// SystemInfo describes the host at a single instant: identity, logical core
// count, memory totals, and uptime. Fields the host does not expose carry the
// Unavailable literal rather than being omitted.
type SystemInfo struct {
	OS            string `json:"os" yaml:"os"`
	OSVersion     string `json:"os_version" yaml:"os_version"`
	KernelVersion string `json:"kernel_version" yaml:"kernel_version"`
	Hostname      string `json:"hostname" yaml:"hostname"`
	CPUCount      int    `json:"cpu_count" yaml:"cpu_count"`
	TotalMemory   uint64 `json:"total_memory" yaml:"total_memory"`
	UsedMemory    uint64 `json:"used_memory" yaml:"used_memory"`
	Uptime        uint64 `json:"uptime" yaml:"uptime"`
}

// MemoryInfo describes physical memory at a single instant. All byte counts
// are clamped so that Used and Available never exceed Total, and UsagePercent
// stays in [0,100] with 0 when Total is 0.
type MemoryInfo struct {
	Total        uint64  `json:"total" yaml:"total"`
	Used         uint64  `json:"used" yaml:"used"`
	Available    uint64  `json:"available" yaml:"available"`
	UsagePercent float64 `json:"usage_percent" yaml:"usage_percent"`
}

// DiskInfo describes one mounted volume. UsagePercent is computed from
// (total - available) with saturating subtraction; some filesystems report
// available space transiently above total and the value must never underflow.
type DiskInfo struct {
	Name           string  `json:"name" yaml:"name"`
	MountPoint     string  `json:"mount_point" yaml:"mount_point"`
	TotalSpace     uint64  `json:"total_space" yaml:"total_space"`
	AvailableSpace uint64  `json:"available_space" yaml:"available_space"`
	UsagePercent   float64 `json:"usage_percent" yaml:"usage_percent"`
}

// CPUInfo describes one logical core: identifier, instantaneous usage in
// [0,100], and current frequency in MHz.
type CPUInfo struct {
	Name      string  `json:"name" yaml:"name"`
	Usage     float64 `json:"usage" yaml:"usage"`
	Frequency uint64  `json:"frequency" yaml:"frequency"`
}

// saturatingSub returns a-b clamped to zero instead of wrapping.
func saturatingSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// usagePercent returns used/total as a percentage, 0 when total is 0.
func usagePercent(total, used uint64) float64 {
	if total == 0 {
		return 0
	}
	return clampPercent(float64(used) / float64(total) * 100)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// orUnavailable substitutes the Unavailable literal for empty text.
func orUnavailable(s string) string {
	if s == "" {
		return Unavailable
	}
	return s
}
