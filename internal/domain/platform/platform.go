// Package platform describes the host BigHelp runs on: operating system,
// container or WSL environment, distribution name and kernel release.
package platform

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OS represents the operating system family.
type OS string

const (
	// OSDarwin is macOS.
	OSDarwin OS = "darwin"
	// OSLinux is Linux (native, WSL or container).
	OSLinux OS = "linux"
	// OSWindows is Windows.
	OSWindows OS = "windows"
	// OSUnknown is anything else.
	OSUnknown OS = "unknown"
)

// DisplayName returns the family as a person would write it, e.g. "Linux".
func (o OS) DisplayName() string {
	switch o {
	case OSDarwin:
		return "Darwin"
	case OSUnknown:
		return "Unknown"
	default:
		return cases.Title(language.English).String(string(o))
	}
}

// Environment represents the execution environment.
type Environment string

const (
	// EnvNative is a native OS environment.
	EnvNative Environment = "native"
	// EnvWSL1 is Windows Subsystem for Linux version 1.
	EnvWSL1 Environment = "wsl1"
	// EnvWSL2 is Windows Subsystem for Linux version 2.
	EnvWSL2 Environment = "wsl2"
	// EnvDocker is a container.
	EnvDocker Environment = "docker"
)

// OSReleasePath is the release metadata file read on Linux.
const OSReleasePath = "/etc/os-release"

// Info is the system summary shown on the System Tools screen.
type Info struct {
	OS            OS
	Arch          string
	Environment   Environment
	Distribution  string // empty when unknown
	KernelRelease string // empty when unknown
	Terminal      string // $TERM or "Unknown"
}

// Detector gathers Info. Its fields are the host hooks; tests replace them.
type Detector struct {
	GOOS          string
	GOARCH        string
	OSReleasePath string
	ReadFile      func(name string) ([]byte, error)
	Stat          func(name string) (os.FileInfo, error)
	Getenv        func(key string) string
	KernelRelease func() string
}

// NewDetector returns a Detector wired to the running host.
func NewDetector() *Detector {
	return &Detector{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		OSReleasePath: OSReleasePath,
		ReadFile:      os.ReadFile,
		Stat:          os.Stat,
		Getenv:        os.Getenv,
		KernelRelease: kernelRelease,
	}
}

// Detect collects Info. Unreadable sources leave their field empty.
func (d *Detector) Detect() Info {
	info := Info{
		OS:            parseOS(d.GOOS),
		Arch:          d.GOARCH,
		Environment:   EnvNative,
		KernelRelease: d.KernelRelease(),
		Terminal:      d.Getenv("TERM"),
	}
	if info.Terminal == "" {
		info.Terminal = "Unknown"
	}

	if info.OS == OSLinux {
		info.Environment = d.linuxEnvironment()
		if data, err := d.ReadFile(d.OSReleasePath); err == nil {
			info.Distribution = ParseOSRelease(data).Name
		}
	}
	return info
}

func parseOS(goos string) OS {
	switch goos {
	case "darwin":
		return OSDarwin
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

func (d *Detector) linuxEnvironment() Environment {
	if version, err := d.ReadFile("/proc/version"); err == nil {
		v := strings.ToLower(string(version))
		if strings.Contains(v, "microsoft") || strings.Contains(v, "wsl") {
			if _, err := d.Stat("/run/WSL"); err == nil || strings.Contains(v, "wsl2") {
				return EnvWSL2
			}
			return EnvWSL1
		}
	}

	if _, err := d.Stat("/.dockerenv"); err == nil {
		return EnvDocker
	}
	if cgroup, err := d.ReadFile("/proc/1/cgroup"); err == nil {
		c := string(cgroup)
		if strings.Contains(c, "docker") || strings.Contains(c, "containerd") {
			return EnvDocker
		}
	}
	return EnvNative
}

// IsWSL returns true for WSL 1 and 2.
func (i Info) IsWSL() bool {
	return i.Environment == EnvWSL1 || i.Environment == EnvWSL2
}

// String returns a compact description such as "linux/amd64/docker".
func (i Info) String() string {
	parts := []string{string(i.OS), i.Arch}
	if i.Environment != EnvNative && i.Environment != "" {
		parts = append(parts, string(i.Environment))
	}
	if i.Distribution != "" {
		parts = append(parts, i.Distribution)
	}
	return strings.Join(parts, "/")
}
