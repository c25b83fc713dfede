//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package platform

func kernelRelease() string {
	return ""
}
