package opengl

import (
	"fmt"
	"image"
	"os"

	"github.com/HugoSmits86/nativewebp"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixels reads the RGBA contents of the currently bound read
// framebuffer. The returned rows are in GL order, bottom row first.
func ReadPixels(width, height int) []uint8 {
	pixels := make([]uint8, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// flipRowsRGBA reverses the row order of an RGBA pixel buffer in place.
// GL readbacks come out bottom row first; image encoders want the top row
// first.
func flipRowsRGBA(pixels []uint8, width, height int) {
	rowLen := width * 4
	tmp := make([]uint8, rowLen)
	for y := 0; y < height/2; y++ {
		top := pixels[y*rowLen : (y+1)*rowLen]
		bot := pixels[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}

// SaveScreenshot reads back the current framebuffer and writes it to path
// as a lossless WebP.
func SaveScreenshot(path string, width, height int) error {
	pixels := ReadPixels(width, height)
	flipRowsRGBA(pixels, width, height)

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot create: %w", err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("screenshot encode: %w", err)
	}
	fmt.Printf("Screenshot saved: %s (%dx%d)\n", path, width, height)
	return nil
}
