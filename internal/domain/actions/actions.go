// Package actions implements the network, package and system tools offered
// from the main menu. Every handler writes human-readable text to a Sink and
// finishes with exactly one status string.
package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/bighelp/internal/domain/probe"
	"github.com/felixgeelhaar/bighelp/internal/ports"
)

// Kind identifies an action.
type Kind int

const (
	CheckConnectivity Kind = iota
	TestWebsites
	NetworkInfo
	UpdatePackageList
	UpgradePackages
	SearchPackage
	SystemInfo
	DiskSpace
	Processes
)

var kindNames = map[Kind]string{
	CheckConnectivity: "check-connectivity",
	TestWebsites:      "test-websites",
	NetworkInfo:       "network-info",
	UpdatePackageList: "update-package-list",
	UpgradePackages:   "upgrade-packages",
	SearchPackage:     "search-package",
	SystemInfo:        "system-info",
	DiskSpace:         "disk-space",
	Processes:         "processes",
}

// String returns the action's log name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Sink receives the text an action displays. Each write replaces the
// previous one; the last write is the final status.
type Sink interface {
	Write(text string)
}

// Recorder is a Sink that keeps every write.
type Recorder struct {
	Writes []string
}

// Write appends text.
func (r *Recorder) Write(text string) {
	r.Writes = append(r.Writes, text)
}

// Final returns the last write, or "" when nothing was written.
func (r *Recorder) Final() string {
	if len(r.Writes) == 0 {
		return ""
	}
	return r.Writes[len(r.Writes)-1]
}

// Handler runs one action.
type Handler func(ctx context.Context, sink Sink)

// Settings are the configurable inputs of the network actions.
type Settings struct {
	ConnectivityHost string
	WebsiteHosts     []string
	// Timeout bounds each probe call; zero uses the probe default.
	Timeout time.Duration
}

// DefaultSettings mirrors the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		ConnectivityHost: "google.com",
		WebsiteHosts:     []string{"google.com", "github.com", "ubuntu.com"},
	}
}

// Handlers binds every action to a probe and settings.
type Handlers struct {
	probe    *probe.Probe
	settings Settings
	logger   ports.Logger
}

// NewHandlers creates Handlers. logger may be nil.
func NewHandlers(p *probe.Probe, settings Settings, logger ports.Logger) *Handlers {
	return &Handlers{probe: p, settings: settings, logger: logger}
}

// ProgressLine returns the text shown while kind is running.
func ProgressLine(kind Kind) string {
	switch kind {
	case CheckConnectivity:
		return "🔍 Checking internet connection..."
	case TestWebsites:
		return "🔍 Testing website connections..."
	case NetworkInfo:
		return "🔍 Getting network information..."
	case UpdatePackageList:
		return "🔄 Updating package list..."
	case UpgradePackages:
		return "⚠️ This action requires admin permissions"
	case SearchPackage:
		return "🔍 To search for packages, use:"
	case SystemInfo:
		return "🔍 Getting system information..."
	case DiskSpace:
		return "💾 Checking disk space..."
	case Processes:
		return "🖥️ Getting process information..."
	default:
		return ""
	}
}

// Handler returns the handler for kind.
func (h *Handlers) Handler(kind Kind) Handler {
	switch kind {
	case CheckConnectivity:
		return h.CheckConnectivity
	case TestWebsites:
		return h.TestWebsites
	case NetworkInfo:
		return h.NetworkInfo
	case UpdatePackageList:
		return h.UpdatePackageList
	case UpgradePackages:
		return h.UpgradePackages
	case SearchPackage:
		return h.SearchPackage
	case SystemInfo:
		return h.SystemInfo
	case DiskSpace:
		return h.DiskSpace
	case Processes:
		return h.Processes
	default:
		return func(_ context.Context, sink Sink) {
			sink.Write(fmt.Sprintf("❌ Unknown action %d", int(kind)))
		}
	}
}

// Run executes kind against sink and returns the final status.
func (h *Handlers) Run(ctx context.Context, kind Kind) string {
	start := time.Now()
	rec := &Recorder{}
	h.Handler(kind)(ctx, rec)

	if h.logger != nil {
		h.logger.Info(ctx, "action finished",
			ports.F("action", kind.String()),
			ports.F("duration", time.Since(start).String()),
		)
	}
	return rec.Final()
}

func (h *Handlers) run(ctx context.Context, argv ...string) probe.Result {
	return h.probe.RunExternal(ctx, argv, h.settings.Timeout)
}

// splitFields splits s on whitespace into at most n fields; the last field
// keeps its inner spacing.
func splitFields(s string, n int) []string {
	var out []string
	rest := strings.TrimLeft(s, " \t\r\v\f")
	for rest != "" && len(out) < n-1 {
		i := strings.IndexAny(rest, " \t\r\v\f")
		if i < 0 {
			break
		}
		out = append(out, rest[:i])
		rest = strings.TrimLeft(rest[i:], " \t\r\v\f")
	}
	if rest != "" {
		out = append(out, rest)
	}
	return out
}
