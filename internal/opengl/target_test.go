package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Size validation runs before any GL allocation, so these cases are safe
// to exercise without a context.
func TestNewRenderTargetRejectsInvalidSize(t *testing.T) {
	for _, tc := range []struct{ w, h int }{
		{0, 0},
		{0, 450},
		{800, 0},
		{-1, 450},
		{800, -1},
	} {
		target, err := NewRenderTarget(tc.w, tc.h)
		assert.Nil(t, target, "size %dx%d", tc.w, tc.h)
		assert.Error(t, err, "size %dx%d", tc.w, tc.h)
	}
}
