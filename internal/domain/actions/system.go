package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/felixgeelhaar/bighelp/internal/domain/platform"
)

const rule = "━━━━━━━━━━━━━━━━━━━━"

// SystemInfo reports the host description.
func (h *Handlers) SystemInfo(_ context.Context, sink Sink) {
	sink.Write(ProgressLine(SystemInfo))
	sink.Write(FormatSystemInfo(h.probe.SystemInfo()))
}

// FormatSystemInfo renders info as the System Information block.
func FormatSystemInfo(info platform.Info) string {
	var b strings.Builder
	b.WriteString("💻 System Information:\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "🖥️ Operating System: %s\n", info.OS.DisplayName())
	fmt.Fprintf(&b, "🐧 Distribution: %s\n", info.Distribution)
	fmt.Fprintf(&b, "📟 Terminal: %s\n", info.Terminal)
	fmt.Fprintf(&b, "🔢 Kernel: %s\n", info.KernelRelease)
	return b.String()
}

// DiskSpace reports usage of the root filesystem from df -h.
func (h *Handlers) DiskSpace(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(DiskSpace))

	res := h.run(ctx, "df", "-h")
	if !res.Success {
		sink.Write("❌ Error getting disk space information")
		return
	}
	sink.Write(ParseDiskUsage(res.Output))
}

// ParseDiskUsage formats the "/" row of df -h output.
func ParseDiskUsage(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) <= 1 {
		return "❌ Unable to read disk information"
	}

	var b strings.Builder
	b.WriteString("💾 Disk Space Usage:\n" + rule + "\n")
	for _, line := range lines[1:] {
		parts := strings.Fields(line)
		if len(parts) >= 6 && parts[5] == "/" {
			fmt.Fprintf(&b, "📁 Root: %s total, %s used, %s available\n", parts[1], parts[2], parts[3])
			fmt.Fprintf(&b, "📊 Usage: %s\n", parts[4])
			break
		}
	}
	return b.String()
}

// Processes lists the five busiest processes by CPU.
func (h *Handlers) Processes(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(Processes))

	res := h.run(ctx, "ps", "aux", "--sort=-%cpu")
	if !res.Success {
		sink.Write("❌ Error getting process information")
		return
	}
	sink.Write(ParseProcesses(res.Output))
}

const (
	headerWidth  = 60
	commandWidth = 30
	topProcesses = 5
	psColumns    = 11
)

// ParseProcesses formats ps aux output: a truncated header and up to five
// rows with CPU, memory and a truncated command.
func ParseProcesses(output string) string {
	lines := strings.Split(output, "\n")
	if len(lines) <= 1 {
		return "❌ Unable to read process information"
	}

	var b strings.Builder
	b.WriteString("🖥️ Top Processes (by CPU usage):\n")
	b.WriteString(strings.Repeat("━", 34) + "\n")
	b.WriteString(runewidth.Truncate(lines[0], headerWidth, "") + "...\n")
	b.WriteString(strings.Repeat("─", headerWidth) + "\n")

	rows := lines[1:]
	if len(rows) > topProcesses {
		rows = rows[:topProcesses]
	}
	for _, line := range rows {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := splitFields(line, psColumns)
		if len(parts) < psColumns {
			continue
		}
		command := runewidth.Truncate(parts[10], commandWidth, "")
		fmt.Fprintf(&b, "CPU: %5s%% | MEM: %5s%% | %s...\n", parts[2], parts[3], command)
	}
	return b.String()
}
