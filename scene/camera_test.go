package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hybrid-render/math"
)

func TestCameraDistance(t *testing.T) {
	cam := NewCamera(math.NewVec3(0, 0, 5), math.Vec3Zero, 45)

	// 1/tan(22.5°) ≈ 2.4142135
	assert.InDelta(t, 2.4142135, cam.Distance(), 1e-4)

	// Deterministic: unchanged by camera orientation
	cam.Position = math.NewVec3(10, -3, 7)
	cam.Target = math.NewVec3(0, 1, 0)
	assert.InDelta(t, 2.4142135, cam.Distance(), 1e-4)

	cam.FovY = 90
	assert.InDelta(t, 1.0, cam.Distance(), 1e-5)
}

func TestCameraDirectionMagnitude(t *testing.T) {
	cases := []struct {
		pos, target math.Vec3
	}{
		{math.NewVec3(0.5, 1.0, 1.5), math.NewVec3(0, 0.5, 0)},
		{math.NewVec3(-4, 2, 9), math.Vec3Zero},
		{math.NewVec3(0, 0, 1), math.NewVec3(0, 0, -1)},
	}
	for _, tc := range cases {
		cam := NewCamera(tc.pos, tc.target, 45)
		dir := cam.Direction()
		assert.InDelta(t, float64(cam.Distance()), float64(dir.Length()), 1e-4,
			"direction magnitude must equal the derived distance")
	}
}

func TestCameraFirstFrameUniforms(t *testing.T) {
	// The demo's starting camera: (0.5, 1.0, 1.5) looking at (0, 0.5, 0),
	// fovy 45°. These are the exact values the first frame uploads.
	cam := NewCamera(math.NewVec3(0.5, 1.0, 1.5), math.NewVec3(0, 0.5, 0), 45)

	assert.Equal(t, math.NewVec3(0.5, 1.0, 1.5), cam.Position)

	dir := cam.Direction()
	assert.InDelta(t, 2.4142135, float64(dir.Length()), 1e-4)

	// Direction points from position toward target
	want := cam.Target.Sub(cam.Position).Normalize()
	got := dir.Normalize()
	assert.InDelta(t, float64(want.X), float64(got.X), 1e-5)
	assert.InDelta(t, float64(want.Y), float64(got.Y), 1e-5)
	assert.InDelta(t, float64(want.Z), float64(got.Z), 1e-5)
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewCamera(math.NewVec3(0, 0, 5), math.Vec3Zero, 45)
	view := cam.ViewMatrix()

	p := math.NewVec4(0, 0, 0, 1).MulMat(view)
	assert.InDelta(t, -5.0, float64(p.Z), 1e-4, "target should sit on the -Z view axis")
}
