package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipRowsRGBA(t *testing.T) {
	// 2x3 image, one marker byte per row
	const w, h = 2, 3
	pixels := make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		pixels[y*w*4] = uint8(y + 1)
	}

	flipRowsRGBA(pixels, w, h)

	assert.Equal(t, uint8(3), pixels[0*w*4])
	assert.Equal(t, uint8(2), pixels[1*w*4])
	assert.Equal(t, uint8(1), pixels[2*w*4])
}

func TestFlipRowsRGBAOddEvenRows(t *testing.T) {
	const w = 1
	for _, h := range []int{1, 2, 4, 5} {
		pixels := make([]uint8, w*h*4)
		for y := 0; y < h; y++ {
			pixels[y*w*4] = uint8(y)
		}
		flipRowsRGBA(pixels, w, h)
		for y := 0; y < h; y++ {
			assert.Equal(t, uint8(h-1-y), pixels[y*w*4], "h=%d row=%d", h, y)
		}
	}
}
