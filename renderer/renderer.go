package renderer

import (
	"fmt"

	"hybrid-render/core"
	"hybrid-render/internal/opengl"
	"hybrid-render/math"
	"hybrid-render/scene"
)

// Clip planes shared by the raster projection and both fragment shaders'
// depth output.
const (
	clipNear = 0.01
	clipFar  = 1000.0
)

// Instance places a mesh in the world.
type Instance struct {
	Mesh  *scene.Mesh
	Model math.Mat4
}

// HybridRenderer composites a fullscreen raymarch pass and a rasterized
// mesh pass into one offscreen target with a shared depth texture, then
// presents the result to the window. Both passes write fragment depth as a
// function of eye distance, so their surfaces occlude each other correctly.
type HybridRenderer struct {
	window *core.Window
	target *opengl.RenderTarget

	raymarch *opengl.RaymarchPass
	raster   *opengl.RasterPipeline
	blit     *opengl.BlitPass
	overlay  *opengl.TextOverlay

	background core.Color
}

// New initializes OpenGL and builds the render passes and the offscreen
// target at the window's size. The window's context must be current.
func New(window *core.Window) (*HybridRenderer, error) {
	if err := opengl.Init(); err != nil {
		return nil, err
	}

	r := &HybridRenderer{
		window:     window,
		background: core.ColorRayWhite,
	}

	var err error
	if r.target, err = opengl.NewRenderTarget(window.Width, window.Height); err != nil {
		return nil, err
	}
	if r.raymarch, err = opengl.NewRaymarchPass(); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.raster, err = opengl.NewRasterPipeline(); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.blit, err = opengl.NewBlitPass(); err != nil {
		r.Destroy()
		return nil, err
	}
	if r.overlay, err = opengl.NewTextOverlay(); err != nil {
		r.Destroy()
		return nil, err
	}

	// The target never resizes, so the screen center is a one-time upload.
	r.raymarch.SetScreenCenter(window.Width, window.Height)

	return r, nil
}

// SetBackground changes the offscreen clear color.
func (r *HybridRenderer) SetBackground(c core.Color) {
	r.background = c
}

// Render draws one frame into the offscreen target: camera uniforms first,
// then the raymarch pass, then the instances, all against the shared depth
// attachment.
func (r *HybridRenderer) Render(cam *scene.Camera, instances []Instance) {
	camDir := cam.Direction()
	r.raymarch.SetCamera(cam.Position, camDir)
	r.raster.SetCamera(cam.Position)

	aspect := float32(r.target.Width) / float32(r.target.Height)
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(aspect, clipNear, clipFar)
	viewProj := view.Mul(proj)

	r.target.Begin()
	opengl.Clear(r.background.R, r.background.G, r.background.B, r.background.A)

	depth := opengl.BeginDepthTest()
	r.raymarch.Draw()
	for _, inst := range instances {
		r.raster.DrawMesh(inst.Mesh, inst.Model.Mul(viewProj), inst.Model)
	}
	depth.End()

	r.target.End()
}

// Present blits the offscreen color texture to the window, vertically
// flipped to undo the target's inverted row order, draws the FPS readout
// and swaps buffers.
func (r *HybridRenderer) Present(fps int) {
	fbWidth, fbHeight := r.window.GetFramebufferSize()
	opengl.SetViewport(fbWidth, fbHeight)
	opengl.Clear(0, 0, 0, 1)

	src := opengl.PresentSourceRect(int(r.target.Width), int(r.target.Height))
	r.blit.Draw(r.target.ColorTex, src, int(r.target.Width), int(r.target.Height))

	r.overlay.DrawText(fmt.Sprintf("%d FPS", fps), 10, 10, 2,
		core.ColorDarkGreen, r.window.Width, r.window.Height)

	r.window.SwapBuffers()
}

// Screenshot saves the offscreen target's current color contents as a
// lossless WebP.
func (r *HybridRenderer) Screenshot(path string) error {
	r.target.Begin()
	err := opengl.SaveScreenshot(path, int(r.target.Width), int(r.target.Height))
	r.target.End()
	return err
}

// UploadTexture makes a decoded texture available to the raster pass.
func (r *HybridRenderer) UploadTexture(tex *scene.Texture) {
	opengl.UploadTexture(tex)
}

// ReleaseMesh frees the GPU buffers of a mesh that is no longer drawn.
func (r *HybridRenderer) ReleaseMesh(mesh *scene.Mesh) {
	r.raster.ReleaseMesh(mesh)
}

// Destroy releases every GPU resource the renderer owns. Safe to call on a
// partially constructed renderer.
func (r *HybridRenderer) Destroy() {
	if r.overlay != nil {
		r.overlay.Destroy()
		r.overlay = nil
	}
	if r.blit != nil {
		r.blit.Destroy()
		r.blit = nil
	}
	if r.raster != nil {
		r.raster.Destroy()
		r.raster = nil
	}
	if r.raymarch != nil {
		r.raymarch.Destroy()
		r.raymarch = nil
	}
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
}
