//go:build !linux

package framebuffer

// AvailableMemory is not supported on this platform.
func AvailableMemory() (uint64, error) { return 0, ErrUnsupported }
