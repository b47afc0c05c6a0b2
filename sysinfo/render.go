package sysinfo

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Render writes the snapshot as a borderless two-column report. Missing
// values render as "n/a" so the layout stays stable on partial data.
func Render(w io.Writer, s Snapshot) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"Hostname", orNA(s.Hostname)})
	table.Append([]string{"OS", orNA(strings.TrimSpace(s.OS + " " + s.Platform))})
	table.Append([]string{"Kernel", orNA(s.KernelVersion)})
	table.Append([]string{"Uptime", formatUptime(s.UptimeSeconds)})
	table.Append([]string{"CPU", orNA(s.CPUModel)})
	table.Append([]string{"Logical cores", lo.Ternary(s.CPUCount > 0, fmt.Sprintf("%d", s.CPUCount), "n/a")})
	table.Append([]string{"Memory", formatMemory(s)})
	for _, iface := range s.Interfaces {
		table.Append([]string{"Iface " + iface.Name, formatInterface(iface)})
	}

	table.Render()
}

func orNA(value string) string {
	return lo.Ternary(value != "", value, "n/a")
}

func formatUptime(seconds uint64) string {
	if seconds == 0 {
		return "n/a"
	}
	return (time.Duration(seconds) * time.Second).String()
}

func formatMemory(s Snapshot) string {
	if s.MemTotal == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d/%d MB (%.1f%%)",
		s.MemUsed/1024/1024, s.MemTotal/1024/1024, s.MemUsedPct)
}

func formatInterface(iface Interface) string {
	parts := []string{fmt.Sprintf("mtu %d", iface.MTU)}
	if len(iface.Flags) > 0 {
		parts = append(parts, strings.Join(iface.Flags, ","))
	}
	parts = append(parts, iface.Addrs...)
	return strings.Join(parts, " ")
}
