package scene

import (
	"github.com/chewxy/math32"

	"hybrid-render/math"
)

// Camera is a perspective look-at camera. FovY is the vertical field of
// view in degrees.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
	FovY     float32
}

// NewCamera returns a camera at position looking at target with the given
// vertical field of view in degrees.
func NewCamera(position, target math.Vec3, fovY float32) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       math.Vec3Up,
		FovY:     fovY,
	}
}

// Distance returns 1/tan(fovy/2). Scaling the unit view direction by this
// value encodes the field of view as vector magnitude, so the raymarch
// shader reconstructs per-pixel rays without a separate FOV uniform.
func (c *Camera) Distance() float32 {
	return 1.0 / math32.Tan(c.FovY*0.5*math32.Pi/180.0)
}

// Direction returns the view direction scaled to Distance(). Its magnitude
// equals Distance() for any Target != Position.
func (c *Camera) Direction() math.Vec3 {
	return c.Target.Sub(c.Position).Normalize().Mul(c.Distance())
}

// ViewMatrix returns the look-at view transform for the raster pass.
func (c *Camera) ViewMatrix() math.Mat4 {
	return math.Mat4LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for the given aspect
// ratio and clip planes.
func (c *Camera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Mat4Perspective(c.FovY*math32.Pi/180.0, aspect, near, far)
}
