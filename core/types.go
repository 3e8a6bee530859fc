package core

import (
	"hybrid-render/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite     = Color{1, 1, 1, 1}
	ColorBlack     = Color{0, 0, 0, 1}
	ColorRed       = Color{1, 0, 0, 1}
	ColorPurple    = Color{0.78, 0.48, 1, 1}
	ColorYellow    = Color{0.99, 0.98, 0, 1}
	ColorDarkGreen = Color{0, 0.46, 0.17, 1}
	ColorRayWhite  = Color{0.96, 0.96, 0.96, 1}
)

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

// Rect is a screen-space rectangle. A negative Width or Height flips the
// rectangle along that axis, which is how the presentation blit selects the
// vertically inverted source region of the offscreen texture.
type Rect struct {
	X, Y, Width, Height float32
}
