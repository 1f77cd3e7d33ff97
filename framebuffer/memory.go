package framebuffer

import (
	"errors"
	"fmt"
)

// DefaultHeadroom is the memory kept free besides the image.
const DefaultHeadroom = 1024

// ErrNotEnoughMemory is returned when an image does not fit
// in the available memory.
var ErrNotEnoughMemory = errors.New("not enough memory for display")

// CheckMemory returns an error wrapping ErrNotEnoughMemory unless
// `available` is strictly greater than `required` + `headroom`.
func CheckMemory(required, available, headroom uint64) error {
	if available > required+headroom {
		return nil
	}
	return fmt.Errorf("%w: display needs %d bytes, application has %d bytes", ErrNotEnoughMemory, required, available)
}
