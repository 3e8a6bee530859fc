package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an offscreen framebuffer whose depth attachment is a
// sampleable texture rather than a renderbuffer, so two independently issued
// draw passes can write and test against the same depth values.
type RenderTarget struct {
	FBO      uint32
	ColorTex uint32 // RGBA8 color attachment
	DepthTex uint32 // DEPTH_COMPONENT24 depth texture, no stencil bits
	Width    int32
	Height   int32

	// State saved by Begin, restored by End.
	prevFBO      int32
	prevViewport [4]int32
}

// NewRenderTarget allocates the framebuffer and both texture attachments.
// On any failure everything allocated so far is released and an error is
// returned; the caller never receives a partially built target.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render target: invalid size %dx%d", width, height)
	}

	t := &RenderTarget{Width: int32(width), Height: int32(height)}

	// Color texture, RGBA8, single mip level
	gl.GenTextures(1, &t.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, t.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		t.Width, t.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Depth texture, single mip level. DEPTH_COMPONENT24 keeps stencil out
	// of the attachment entirely.
	gl.GenTextures(1, &t.DepthTex)
	gl.BindTexture(gl.TEXTURE_2D, t.DepthTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.DEPTH_COMPONENT24,
		t.Width, t.Height, 0, gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenFramebuffers(1, &t.FBO)
	if t.FBO == 0 {
		t.Destroy()
		return nil, fmt.Errorf("render target: framebuffer object can not be created")
	}

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0,
		gl.TEXTURE_2D, t.ColorTex, 0)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
		gl.TEXTURE_2D, t.DepthTex, 0)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))

	if status != gl.FRAMEBUFFER_COMPLETE {
		t.Destroy()
		return nil, fmt.Errorf("render target: framebuffer incomplete (0x%X)", status)
	}

	fmt.Printf("FBO: [ID %d] render target %dx%d created (color + depth texture)\n",
		t.FBO, width, height)
	return t, nil
}

// Destroy releases the color texture, then the depth texture, then the
// framebuffer object. Releasing attachments first avoids dangling
// attachment references. Safe to call more than once.
func (t *RenderTarget) Destroy() {
	if t.ColorTex != 0 {
		gl.DeleteTextures(1, &t.ColorTex)
		t.ColorTex = 0
	}
	if t.DepthTex != 0 {
		gl.DeleteTextures(1, &t.DepthTex)
		t.DepthTex = 0
	}
	if t.FBO != 0 {
		gl.DeleteFramebuffers(1, &t.FBO)
		t.FBO = 0
	}
}

// Begin binds the target as the draw destination and sets its viewport,
// saving whatever framebuffer and viewport were active.
func (t *RenderTarget) Begin() {
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &t.prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &t.prevViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.Viewport(0, 0, t.Width, t.Height)
}

// End restores the framebuffer binding and viewport saved by Begin.
func (t *RenderTarget) End() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(t.prevFBO))
	gl.Viewport(t.prevViewport[0], t.prevViewport[1], t.prevViewport[2], t.prevViewport[3])
}
