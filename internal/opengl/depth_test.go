package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcDepthRange(t *testing.T) {
	assert.InDelta(t, 0.0, CalcDepth(depthNear), 1e-6)
	assert.InDelta(t, 1.0, CalcDepth(depthFar), 1e-6)
}

func TestCalcDepthMonotonic(t *testing.T) {
	dists := []float32{0.02, 0.5, 1, 2.5, 10, 100, 900}
	prev := CalcDepth(depthNear)
	for _, d := range dists {
		cur := CalcDepth(d)
		assert.Greater(t, cur, prev, "depth must grow with distance, dist=%v", d)
		prev = cur
	}
}

func TestCalcDepthOcclusionOrder(t *testing.T) {
	// A surface at 1.5 units must pass the depth test against one at 2.0,
	// regardless of which pass produced it.
	near := CalcDepth(1.5)
	far := CalcDepth(2.0)
	assert.Less(t, near, far)
}

func TestDistFromDepthRoundTrip(t *testing.T) {
	for _, d := range []float32{0.05, 1, 3, 42, 500} {
		assert.InDelta(t, d, DistFromDepth(CalcDepth(d)), float64(d)*1e-3)
	}
}
