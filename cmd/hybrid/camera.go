package main

import (
	"github.com/chewxy/math32"

	"hybrid-render/core"
	"hybrid-render/math"
	"hybrid-render/scene"
)

const (
	orbitSensitivity = 0.005
	orbitKeySpeed    = 1.2 // radians per second
	zoomSpeed        = 0.4
	minRadius        = 0.5
	maxRadius        = 20.0
	maxPitch         = 1.45 // just short of straight up/down
)

// orbitControl moves the camera around its target on mouse drag, keyboard
// and scroll input. The target stays fixed.
type orbitControl struct {
	window *core.Window
	cam    *scene.Camera

	radius float32
	yaw    float32
	pitch  float32

	homeRadius float32
	homeYaw    float32
	homePitch  float32

	dragging     bool
	lastX, lastY float64
	scrollAccum  float32
}

func newOrbitControl(window *core.Window, cam *scene.Camera) *orbitControl {
	offset := cam.Position.Sub(cam.Target)
	oc := &orbitControl{
		window: window,
		cam:    cam,
		radius: offset.Length(),
		yaw:    math32.Atan2(offset.X, offset.Z),
		pitch:  math32.Asin(offset.Y / offset.Length()),
	}
	oc.homeRadius, oc.homeYaw, oc.homePitch = oc.radius, oc.yaw, oc.pitch

	window.SetScrollCallback(func(xoff, yoff float64) {
		oc.scrollAccum += float32(yoff)
	})
	return oc
}

func (oc *orbitControl) update(dt float32) {
	if oc.window.IsMouseButtonPressed(core.MouseButtonLeft) {
		x, y := oc.window.GetCursorPos()
		if oc.dragging {
			oc.yaw -= float32(x-oc.lastX) * orbitSensitivity
			oc.pitch += float32(y-oc.lastY) * orbitSensitivity
		}
		oc.dragging = true
		oc.lastX, oc.lastY = x, y
	} else {
		oc.dragging = false
	}

	if oc.window.IsKeyPressed(core.KeyA) {
		oc.yaw += orbitKeySpeed * dt
	}
	if oc.window.IsKeyPressed(core.KeyD) {
		oc.yaw -= orbitKeySpeed * dt
	}
	if oc.window.IsKeyPressed(core.KeyW) {
		oc.pitch += orbitKeySpeed * dt
	}
	if oc.window.IsKeyPressed(core.KeyS) {
		oc.pitch -= orbitKeySpeed * dt
	}
	if oc.window.IsKeyPressed(core.KeySpace) {
		oc.radius, oc.yaw, oc.pitch = oc.homeRadius, oc.homeYaw, oc.homePitch
	}

	if oc.scrollAccum != 0 {
		oc.radius -= oc.scrollAccum * zoomSpeed
		oc.scrollAccum = 0
	}

	oc.radius = clamp(oc.radius, minRadius, maxRadius)
	oc.pitch = clamp(oc.pitch, -maxPitch, maxPitch)

	cosP := math32.Cos(oc.pitch)
	oc.cam.Position = oc.cam.Target.Add(math.Vec3{
		X: oc.radius * cosP * math32.Sin(oc.yaw),
		Y: oc.radius * math32.Sin(oc.pitch),
		Z: oc.radius * cosP * math32.Cos(oc.yaw),
	})
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
