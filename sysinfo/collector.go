package sysinfo

import (
	"log/slog"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/net"
)

// Interface is one network interface of the host.
type Interface struct {
	Name  string
	MTU   int
	Flags []string
	Addrs []string
}

// Snapshot is a one-shot view of the host. Fields left at zero value mean
// the corresponding probe failed.
type Snapshot struct {
	Hostname      string
	OS            string
	Platform      string
	KernelVersion string
	UptimeSeconds uint64
	CPUModel      string
	CPUCount      int
	MemTotal      uint64
	MemUsed       uint64
	MemUsedPct    float64
	Interfaces    []Interface
}

// Collect probes the host once. The report is best-effort: a failing probe
// is logged and its fields stay at zero value, the run never aborts.
func Collect(log *slog.Logger) Snapshot {
	var s Snapshot

	if info, err := host.Info(); err != nil {
		log.Debug("Error while retrieving host info", "err", err)
	} else {
		s.Hostname = info.Hostname
		s.OS = info.OS
		s.Platform = info.Platform + " " + info.PlatformVersion
		s.KernelVersion = info.KernelVersion
		s.UptimeSeconds = info.Uptime
	}

	if infos, err := cpu.Info(); err != nil {
		log.Debug("Error while retrieving cpu info", "err", err)
	} else if len(infos) > 0 {
		s.CPUModel = infos[0].ModelName
	}

	if count, err := cpu.Counts(true); err != nil {
		log.Debug("Error while counting cpus", "err", err)
	} else {
		s.CPUCount = count
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		log.Debug("Error while retrieving memory usage", "err", err)
	} else {
		s.MemTotal = vm.Total
		s.MemUsed = vm.Used
		s.MemUsedPct = vm.UsedPercent
	}

	if ifaces, err := net.Interfaces(); err != nil {
		log.Debug("Error while listing network interfaces", "err", err)
	} else {
		for _, iface := range ifaces {
			entry := Interface{
				Name:  iface.Name,
				MTU:   iface.MTU,
				Flags: iface.Flags,
			}
			for _, addr := range iface.Addrs {
				entry.Addrs = append(entry.Addrs, addr.Addr)
			}
			s.Interfaces = append(s.Interfaces, entry)
		}
	}

	return s
}
