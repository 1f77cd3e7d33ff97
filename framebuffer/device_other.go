//go:build !linux

package framebuffer

// Device is not available on this platform.
type Device struct {
	info Info
}

// Open always returns ErrUnsupported.
func Open(path string) (*Device, error) { return nil, ErrUnsupported }

func (d *Device) Info() Info { return d.info }

func (d *Device) Write(img *Image) (int, error) { return 0, ErrUnsupported }

func (d *Device) Close() error { return nil }
