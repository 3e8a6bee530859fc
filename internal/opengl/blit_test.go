package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hybrid-render/core"
)

func TestPresentSourceRectNegatesHeight(t *testing.T) {
	r := PresentSourceRect(800, 450)
	assert.Equal(t, float32(800), r.Width)
	assert.Equal(t, float32(-450), r.Height)
	// Regression guard: the height sign must stay opposite the width sign,
	// otherwise the presented image is upside down.
	assert.Less(t, r.Height*r.Width, float32(0))
}

func TestBlitUVsFullTextureInverted(t *testing.T) {
	// Presenting a render target: negated height yields identity UVs, the
	// target's bottom row maps to the bottom of the screen.
	uvMin, uvMax := blitUVs(PresentSourceRect(800, 450), 800, 450)
	assert.InDelta(t, 0.0, uvMin.X, 1e-6)
	assert.InDelta(t, 0.0, uvMin.Y, 1e-6)
	assert.InDelta(t, 1.0, uvMax.X, 1e-6)
	assert.InDelta(t, 1.0, uvMax.Y, 1e-6)
}

func TestBlitUVsPositiveHeightFlips(t *testing.T) {
	uvMin, uvMax := blitUVs(core.Rect{X: 0, Y: 0, Width: 800, Height: 450}, 800, 450)
	assert.InDelta(t, 1.0, uvMin.Y, 1e-6)
	assert.InDelta(t, 0.0, uvMax.Y, 1e-6)
}

func TestBlitUVsSubRect(t *testing.T) {
	uvMin, uvMax := blitUVs(core.Rect{X: 100, Y: 50, Width: 200, Height: -100}, 800, 400)
	assert.InDelta(t, 0.125, uvMin.X, 1e-6)
	assert.InDelta(t, 0.375, uvMax.X, 1e-6)
	assert.InDelta(t, 0.125, uvMin.Y, 1e-6)
	assert.InDelta(t, 0.375, uvMax.Y, 1e-6)
}

func TestBlitUVsNegativeWidthMirrors(t *testing.T) {
	uvMin, uvMax := blitUVs(core.Rect{X: 0, Y: 0, Width: -800, Height: -450}, 800, 450)
	assert.InDelta(t, 1.0, uvMin.X, 1e-6)
	assert.InDelta(t, 0.0, uvMax.X, 1e-6)
}
