package framebuffer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckMemory(t *testing.T) {
	assert.NoError(t, CheckMemory(1000, 2025, DefaultHeadroom))

	err := CheckMemory(1000, 2024, DefaultHeadroom)
	assert.True(t, errors.Is(err, ErrNotEnoughMemory))
	assert.Contains(t, err.Error(), "display needs 1000 bytes, application has 2024 bytes")

	assert.Error(t, CheckMemory(1000, 0, 0))
}
