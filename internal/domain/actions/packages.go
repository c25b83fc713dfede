package actions

import (
	"context"
)

// packageManager describes a supported package manager, in detection order.
type packageManager struct {
	name    string
	update  []string
	search  string
	upgrade string
}

var packageManagers = []packageManager{
	{name: "apt", update: []string{"sudo", "apt", "update"}, search: "apt search <package_name>", upgrade: "sudo apt upgrade"},
	{name: "yum", update: []string{"sudo", "yum", "check-update"}, search: "yum search <package_name>", upgrade: "sudo yum upgrade"},
	{name: "pacman", update: []string{"sudo", "pacman", "-Sy"}, search: "pacman -Ss <package_name>", upgrade: "sudo pacman -Syu"},
}

func (h *Handlers) detectPackageManager() (packageManager, bool) {
	for _, pm := range packageManagers {
		if h.probe.CommandExists(pm.name) {
			return pm, true
		}
	}
	return packageManager{}, false
}

// UpdatePackageList refreshes the package index of the detected manager.
func (h *Handlers) UpdatePackageList(ctx context.Context, sink Sink) {
	sink.Write(ProgressLine(UpdatePackageList))

	pm, ok := h.detectPackageManager()
	if !ok {
		sink.Write("❌ No supported package manager found")
		return
	}

	res := h.run(ctx, pm.update...)
	if res.Success {
		sink.Write("✅ Package list updated successfully!")
		return
	}
	sink.Write("❌ Error updating packages: " + res.Output)
}

// UpgradePackages prints the upgrade command. It never runs it.
// Without a detected manager the apt command is shown.
func (h *Handlers) UpgradePackages(_ context.Context, sink Sink) {
	sink.Write(ProgressLine(UpgradePackages))

	pm, ok := h.detectPackageManager()
	if !ok {
		pm = packageManagers[0]
	}
	sink.Write(ProgressLine(UpgradePackages) + "\n💡 Run this from terminal: " + pm.upgrade)
}

// SearchPackage prints the search syntax of the detected manager.
func (h *Handlers) SearchPackage(_ context.Context, sink Sink) {
	sink.Write(ProgressLine(SearchPackage))

	pm, ok := h.detectPackageManager()
	if !ok {
		sink.Write("❌ No package manager found")
		return
	}
	sink.Write("💡 To search for packages, use:\n" + pm.search)
}
