//go:build linux

package framebuffer

import "golang.org/x/sys/unix"

// AvailableMemory returns the free RAM reported by the kernel.
func AvailableMemory() (uint64, error) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, err
	}
	return uint64(info.Freeram) * uint64(info.Unit), nil
}
