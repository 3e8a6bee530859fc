package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hybrid-render/core"
	"hybrid-render/math"
)

// blitLocs: resolved once after link.
type blitLocs struct {
	uvMin    int32
	uvMax    int32
	colorTex int32
}

// BlitPass copies a texture region to the currently bound framebuffer as a
// fullscreen draw.
type BlitPass struct {
	program uint32
	vao     uint32
	locs    blitLocs
}

const blitVertSrc = `
#version 410 core
uniform vec2 uvMin;
uniform vec2 uvMax;

out vec2 fragUV;

void main() {
    vec2 pos = vec2(float((gl_VertexID & 1) << 2) - 1.0,
                    float((gl_VertexID & 2) << 1) - 1.0);
    gl_Position = vec4(pos, 0.0, 1.0);
    fragUV = mix(uvMin, uvMax, pos * 0.5 + 0.5);
}
` + "\x00"

const blitFragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D colorTex;

void main() {
    outColor = texture(colorTex, fragUV);
}
` + "\x00"

// PresentSourceRect returns the source rectangle for presenting a render
// target of the given size. The height is negated: the offscreen texture's
// row order is inverted relative to the screen, and the negative height
// tells the blit to invert it back.
func PresentSourceRect(width, height int) core.Rect {
	return core.Rect{X: 0, Y: 0, Width: float32(width), Height: -float32(height)}
}

// blitUVs maps a source rectangle to the UV corners of the fullscreen
// quad. uvMin lands on the bottom-left screen corner, uvMax on the
// top-right. The rectangle is in texture-data row order: Y 0 selects row 0
// of the data. Textures uploaded from images store the top row first, so a
// positive Height draws them upright; render targets store the bottom row
// first and need a negated Height to come out upright. A negative Width
// mirrors horizontally.
func blitUVs(src core.Rect, texWidth, texHeight float32) (uvMin, uvMax math.Vec2) {
	w, h := src.Width, src.Height
	flipX, flipY := false, false
	if w < 0 {
		w, flipX = -w, true
	}
	if h < 0 {
		h, flipY = -h, true
	}

	u0 := src.X / texWidth       // left screen edge
	u1 := (src.X + w) / texWidth // right screen edge
	v0 := (src.Y + h) / texHeight
	v1 := src.Y / texHeight

	if flipX {
		u0, u1 = u1, u0
	}
	if flipY {
		v0, v1 = v1, v0
	}
	return math.Vec2{X: u0, Y: v0}, math.Vec2{X: u1, Y: v1}
}

// NewBlitPass compiles the blit program.
func NewBlitPass() (*BlitPass, error) {
	prog, err := newProgram(blitVertSrc, blitFragSrc)
	if err != nil {
		return nil, fmt.Errorf("blit shader: %w", err)
	}

	p := &BlitPass{
		program: prog,
		locs: blitLocs{
			uvMin:    uniformLoc(prog, "uvMin"),
			uvMax:    uniformLoc(prog, "uvMax"),
			colorTex: uniformLoc(prog, "colorTex"),
		},
	}
	gl.GenVertexArrays(1, &p.vao)

	scope := beginProgram(prog)
	gl.Uniform1i(p.locs.colorTex, 0)
	scope.End()

	return p, nil
}

// Draw blits the given region of texID to the current framebuffer. Depth
// testing should be disabled by the caller; the blit has no meaningful
// depth.
func (p *BlitPass) Draw(texID uint32, src core.Rect, texWidth, texHeight int) {
	uvMin, uvMax := blitUVs(src, float32(texWidth), float32(texHeight))

	scope := beginProgram(p.program)
	defer scope.End()

	gl.Uniform2f(p.locs.uvMin, uvMin.X, uvMin.Y)
	gl.Uniform2f(p.locs.uvMax, uvMax.X, uvMax.Y)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases the pass's GPU resources.
func (p *BlitPass) Destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
