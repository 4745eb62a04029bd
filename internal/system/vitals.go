// Package system describes the host the server runs on
package system

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Host is a snapshot of static host properties logged at startup
type Host struct {
	Hostname        string
	OS              string
	Platform        string
	PlatformVersion string
	CPUs            int
	MemTotal        uint64
}

// Describe collects the host description
func Describe() (*Host, error) {
	info, err := host.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get host info: %w", err)
	}

	cpus, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to get CPU count: %w", err)
	}

	memStat, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}

	return &Host{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		CPUs:            cpus,
		MemTotal:        memStat.Total,
	}, nil
}

func (h *Host) String() string {
	platform := h.Platform
	if h.PlatformVersion != "" {
		platform += " " + h.PlatformVersion
	}
	if platform == "" {
		platform = h.OS
	}
	return fmt.Sprintf("%s (%s, %d CPUs, %s RAM)", h.Hostname, platform, h.CPUs, formatBytes(h.MemTotal))
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
