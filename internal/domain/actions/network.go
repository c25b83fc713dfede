package actions

import (
	"context"
	"strings"
)

// CheckConnectivity pings the configured host once.
func (h *Handlers) CheckConnectivity(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(CheckConnectivity))

	if h.run(ctx, "ping", "-c", "1", h.settings.ConnectivityHost).Success {
		sink.Write("✅ Internet connection is working!")
		return
	}
	sink.Write("❌ No internet connection detected")
}

// TestWebsites pings each configured website and reports one line per host.
func (h *Handlers) TestWebsites(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(TestWebsites))

	lines := make([]string, 0, len(h.settings.WebsiteHosts))
	for _, host := range h.settings.WebsiteHosts {
		status := "❌"
		if h.run(ctx, "ping", "-c", "1", host).Success {
			status = "✅"
		}
		lines = append(lines, status+" "+host)
	}
	sink.Write(strings.Join(lines, "\n"))
}

const networkHeader = "📡 Network Information:\n"

// NetworkInfo lists the host's IPv4 addresses other than loopback.
func (h *Handlers) NetworkInfo(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(NetworkInfo))

	var argv []string
	switch {
	case h.probe.CommandExists("ip"):
		argv = []string{"ip", "addr", "show"}
	case h.probe.CommandExists("ifconfig"):
		argv = []string{"ifconfig"}
	default:
		sink.Write("❌ No network tools available")
		return
	}

	res := h.run(ctx, argv...)
	if !res.Success {
		sink.Write("❌ Error getting network information")
		return
	}
	sink.Write(ParseAddresses(res.Output))
}

// ParseAddresses formats the "inet" lines of ip or ifconfig output.
func ParseAddresses(output string) string {
	var b strings.Builder
	b.WriteString(networkHeader)
	found := false
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "inet ") || strings.Contains(line, "127.0.0.1") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		b.WriteString("🌐 IP Address: " + fields[1] + "\n")
		found = true
	}
	if !found {
		return "❌ No active network connections"
	}
	return b.String()
}
