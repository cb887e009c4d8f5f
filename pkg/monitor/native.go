package monitor

import (
	"fmt"
	"unicode/utf8"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// nativeProvider reads host state through gopsutil. It retains the result of
// the last refresh so reads reflect a known instant; Disks is the exception
// and enumerates the mount table fresh on every call.
//
// Read failures are absorbed: text fields fall back to the Unavailable
// literal and numeric fields to zero. No error ever reaches the caller.
type nativeProvider struct {
	sys   SystemInfo
	mem   MemoryInfo
	cores []CPUInfo
}

func newNativeProvider() *nativeProvider {
	p := &nativeProvider{}
	p.Refresh()
	return p
}

func (p *nativeProvider) Refresh() {
	p.RefreshMemory()
	p.RefreshCPU()
	p.refreshSystem()
}

func (p *nativeProvider) refreshSystem() {
	sys := SystemInfo{
		OS:            Unavailable,
		OSVersion:     Unavailable,
		KernelVersion: Unavailable,
		Hostname:      Unavailable,
	}

	if info, err := host.Info(); err == nil {
		sys.OS = orUnavailable(info.Platform)
		sys.OSVersion = orUnavailable(info.PlatformVersion)
		sys.KernelVersion = orUnavailable(info.KernelVersion)
		sys.Hostname = orUnavailable(info.Hostname)
		sys.Uptime = info.Uptime
	}

	if count, err := cpu.Counts(true); err == nil {
		sys.CPUCount = count
	}

	// Memory totals come from the retained memory state so the two views
	// agree within one refresh.
	sys.TotalMemory = p.mem.Total
	sys.UsedMemory = p.mem.Used

	p.sys = sys
}

func (p *nativeProvider) RefreshMemory() {
	v, err := mem.VirtualMemory()
	if err != nil {
		p.mem = MemoryInfo{}
		return
	}

	total := v.Total
	used := min(v.Used, total)
	available := min(v.Available, total)

	p.mem = MemoryInfo{
		Total:        total,
		Used:         used,
		Available:    available,
		UsagePercent: usagePercent(total, used),
	}
}

func (p *nativeProvider) RefreshCPU() {
	usages, err := cpu.Percent(0, true)
	if err != nil {
		p.cores = []CPUInfo{}
		return
	}

	// cpu.Info returns one entry per logical core on Linux but a single
	// summary entry on darwin; index past the end falls back to the first.
	infos, _ := cpu.Info()

	cores := make([]CPUInfo, 0, len(usages))
	for i, usage := range usages {
		var freq uint64
		switch {
		case i < len(infos):
			freq = uint64(infos[i].Mhz)
		case len(infos) > 0:
			freq = uint64(infos[0].Mhz)
		}
		cores = append(cores, CPUInfo{
			Name:      fmt.Sprintf("cpu%d", i),
			Usage:     clampPercent(usage),
			Frequency: freq,
		})
	}
	p.cores = cores
}

func (p *nativeProvider) System() SystemInfo {
	return p.sys
}

func (p *nativeProvider) Memory() MemoryInfo {
	return p.mem
}

func (p *nativeProvider) Disks() []DiskInfo {
	parts, err := disk.Partitions(false)
	if err != nil {
		return []DiskInfo{}
	}

	disks := make([]DiskInfo, 0, len(parts))
	for _, part := range parts {
		d := DiskInfo{
			Name:       lossyString(part.Device),
			MountPoint: lossyString(part.Mountpoint),
		}
		// Unreadable mounts keep their identity with zeroed capacity
		// rather than dropping out of the listing.
		if usage, err := disk.Usage(part.Mountpoint); err == nil {
			d.TotalSpace = usage.Total
			d.AvailableSpace = usage.Free
			d.UsagePercent = usagePercent(usage.Total, saturatingSub(usage.Total, usage.Free))
		}
		disks = append(disks, d)
	}
	return disks
}

func (p *nativeProvider) Cores() []CPUInfo {
	return p.cores
}

// lossyString replaces ill-formed UTF-8 sequences with the replacement
// character. Device and mount identifiers are not guaranteed to be valid
// UTF-8 on every platform.
func lossyString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(runes.ReplaceIllFormed(), s)
	if err != nil {
		return string(utf8.RuneError)
	}
	return out
}
