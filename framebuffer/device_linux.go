//go:build linux

package framebuffer

import (
	"bytes"
	"fmt"
	"os"
	"unsafe"

	"github.com/benoitkugler/scenedraw/scene"
	"golang.org/x/sys/unix"
)

// ioctl requests, from linux/fb.h
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

type fbBitfield struct {
	Offset, Length, MsbRight uint32
}

// fbVarScreenInfo mirrors struct fb_var_screeninfo.
type fbVarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp fbBitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode              uint32
	Rotate, Colorspace       uint32
	Reserved                 [4]uint32
}

// fbFixScreenInfo mirrors struct fb_fix_screeninfo.
type fbFixScreenInfo struct {
	ID                            [16]byte
	SmemStart                     uintptr
	SmemLen                       uint32
	Type, TypeAux, Visual         uint32
	XPanStep, YPanStep, YWrapStep uint16
	LineLength                    uint32
	MmioStart                     uintptr
	MmioLen                       uint32
	Accel                         uint32
	Capabilities                  uint16
	Reserved                      [2]uint16
}

// Device is an opened framebuffer, with its memory mapped.
type Device struct {
	file *os.File
	mem  []byte
	info Info
}

func ioctl(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Open opens the framebuffer device at `path` (such as /dev/fb0),
// reads its geometry and maps its memory.
func Open(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	var (
		vinfo fbVarScreenInfo
		finfo fbFixScreenInfo
	)
	if err = ioctl(file.Fd(), fbioGetVScreenInfo, unsafe.Pointer(&vinfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("reading %s screen info: %w", path, err)
	}
	if err = ioctl(file.Fd(), fbioGetFScreenInfo, unsafe.Pointer(&finfo)); err != nil {
		file.Close()
		return nil, fmt.Errorf("reading %s fixed info: %w", path, err)
	}
	format, err := formatOf(&vinfo)
	if err != nil {
		file.Close()
		return nil, err
	}
	info := Info{
		ID:         string(bytes.TrimRight(finfo.ID[:], "\x00")),
		Width:      int(vinfo.XRes),
		Height:     int(vinfo.YRes),
		Stride:     int(finfo.LineLength),
		Format:     format,
		MemorySize: int(finfo.SmemLen),
	}
	if info.Stride == 0 {
		info.Stride = (info.Width*format.BitsPerPixel() + 7) / 8
	}
	mem, err := unix.Mmap(int(file.Fd()), 0, info.MemorySize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	scene.Logger().Info("framebuffer opened", "path", path, "info", info.String())
	return &Device{file: file, mem: mem, info: info}, nil
}

// formatOf checks the color layout announced by the driver.
func formatOf(v *fbVarScreenInfo) (Format, error) {
	f, err := FormatForDepth(int(v.BitsPerPixel))
	if err != nil {
		return 0, err
	}
	if (f == RGB888 || f == XRGB8888) && v.Red.Offset != 16 {
		return 0, fmt.Errorf("%w: red channel at bit %d", ErrUnsupportedFormat, v.Red.Offset)
	}
	return f, nil
}

// Info returns the device geometry.
func (d *Device) Info() Info { return d.info }

// Write copies the image to the device memory and flushes it.
// It returns the number of bytes copied.
func (d *Device) Write(img *Image) (int, error) {
	if img.Format != d.info.Format {
		return 0, fmt.Errorf("%w: image is %s, device is %s", ErrUnsupportedFormat, img.Format, d.info.Format)
	}
	n := copyRows(d.mem, d.info.Stride, img)
	if err := unix.Msync(d.mem, unix.MS_SYNC); err != nil {
		return n, err
	}
	return n, nil
}

// Close unmaps the device memory and closes the device.
func (d *Device) Close() error {
	errUnmap := unix.Munmap(d.mem)
	errClose := d.file.Close()
	if errUnmap != nil {
		return errUnmap
	}
	return errClose
}
