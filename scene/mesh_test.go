package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hybrid-render/core"
)

func TestCreateCube(t *testing.T) {
	m := CreateCube(1.0, core.ColorWhite)

	assert.Equal(t, DrawTriangles, m.DrawMode)
	assert.Len(t, m.Vertices, 24, "6 faces x 4 corners")
	assert.Len(t, m.Indices, 36, "6 faces x 2 triangles")

	// Every vertex sits on the half-size shell
	for _, v := range m.Vertices {
		for _, c := range []float32{v.Position.X, v.Position.Y, v.Position.Z} {
			assert.InDelta(t, 0.5, float64(abs32(c)), 1e-6)
		}
	}

	// Indices stay in range
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestCreateCubeWires(t *testing.T) {
	m := CreateCubeWires(2.0, core.ColorRed)

	assert.Equal(t, DrawLines, m.DrawMode)
	assert.Len(t, m.Vertices, 8)
	assert.Len(t, m.Indices, 24, "12 edges x 2 endpoints")

	for _, v := range m.Vertices {
		assert.Equal(t, core.ColorRed, v.Color)
	}
}

func TestCreateGrid(t *testing.T) {
	m := CreateGrid(10, 1.0)

	assert.Equal(t, DrawLines, m.DrawMode)
	// (slices+1) lines per axis, 2 vertices per line
	assert.Len(t, m.Vertices, 2*2*11)
	assert.Len(t, m.Indices, len(m.Vertices))

	// All lines lie on the XZ plane within the half-extent
	for _, v := range m.Vertices {
		assert.Zero(t, v.Position.Y)
		assert.LessOrEqual(t, float64(abs32(v.Position.X)), 5.0+1e-6)
		assert.LessOrEqual(t, float64(abs32(v.Position.Z)), 5.0+1e-6)
	}

	// Degenerate slice count is clamped rather than producing an empty mesh
	m = CreateGrid(0, 1.0)
	assert.NotEmpty(t, m.Vertices)
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
