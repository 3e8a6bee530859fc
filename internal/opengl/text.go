package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hybrid-render/core"
)

// overlayCharset lists every rune the overlay can draw, in atlas order.
// Enough for FPS readouts and timings; anything else renders as a space.
const overlayCharset = "0123456789:. FPS"

const glyphSize = 8

// overlayGlyphs holds 8x8 bitmaps, top row first, bit 7 leftmost.
var overlayGlyphs = map[byte][glyphSize]uint8{
	'0': {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00},
	'1': {0x18, 0x38, 0x18, 0x18, 0x18, 0x18, 0x7E, 0x00},
	'2': {0x3C, 0x66, 0x06, 0x0C, 0x18, 0x30, 0x7E, 0x00},
	'3': {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00},
	'4': {0x0C, 0x1C, 0x3C, 0x6C, 0x7E, 0x0C, 0x0C, 0x00},
	'5': {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00},
	'6': {0x1C, 0x30, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00},
	'7': {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8': {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00},
	'9': {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x0C, 0x38, 0x00},
	':': {0x00, 0x18, 0x18, 0x00, 0x18, 0x18, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00},
	' ': {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'F': {0x7E, 0x60, 0x60, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'P': {0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00},
	'S': {0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00},
}

// textLocs: resolved once after link.
type textLocs struct {
	screenSize int32
	textColor  int32
	fontTex    int32
}

// TextOverlay draws short strings from the built-in glyph atlas directly
// to the current framebuffer, in pixel coordinates with the origin at the
// top-left.
type TextOverlay struct {
	program  uint32
	vao      uint32
	vbo      uint32
	atlasTex uint32
	locs     textLocs
}

const textVertSrc = `
#version 410 core
layout(location = 0) in vec2 inPos;
layout(location = 1) in vec2 inUV;

uniform vec2 screenSize;

out vec2 fragUV;

void main() {
    vec2 ndc = vec2(inPos.x / screenSize.x * 2.0 - 1.0,
                    1.0 - inPos.y / screenSize.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
    fragUV = inUV;
}
` + "\x00"

const textFragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D fontTex;
uniform vec4 textColor;

void main() {
    float a = texture(fontTex, fragUV).a;
    if (a < 0.5) discard;
    outColor = textColor;
}
` + "\x00"

// glyphAtlasIndex returns the atlas slot of c, or the slot of ' ' when the
// charset does not cover c.
func glyphAtlasIndex(c byte) int {
	for i := 0; i < len(overlayCharset); i++ {
		if overlayCharset[i] == c {
			return i
		}
	}
	return glyphAtlasIndex(' ')
}

// buildGlyphAtlas rasterizes the charset into one RGBA row of 8x8 cells.
func buildGlyphAtlas() []uint8 {
	width := len(overlayCharset) * glyphSize
	pixels := make([]uint8, width*glyphSize*4)
	for slot := 0; slot < len(overlayCharset); slot++ {
		bitmap := overlayGlyphs[overlayCharset[slot]]
		for row := 0; row < glyphSize; row++ {
			for col := 0; col < glyphSize; col++ {
				if bitmap[row]&(0x80>>col) == 0 {
					continue
				}
				// atlas row 0 holds the glyph top row
				idx := (row*width + slot*glyphSize + col) * 4
				pixels[idx+0] = 0xFF
				pixels[idx+1] = 0xFF
				pixels[idx+2] = 0xFF
				pixels[idx+3] = 0xFF
			}
		}
	}
	return pixels
}

// NewTextOverlay compiles the overlay program and uploads the glyph atlas.
func NewTextOverlay() (*TextOverlay, error) {
	prog, err := newProgram(textVertSrc, textFragSrc)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}

	o := &TextOverlay{
		program: prog,
		locs: textLocs{
			screenSize: uniformLoc(prog, "screenSize"),
			textColor:  uniformLoc(prog, "textColor"),
			fontTex:    uniformLoc(prog, "fontTex"),
		},
	}

	atlas := buildGlyphAtlas()
	gl.GenTextures(1, &o.atlasTex)
	gl.BindTexture(gl.TEXTURE_2D, o.atlasTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(len(overlayCharset)*glyphSize), glyphSize, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(8))
	gl.BindVertexArray(0)

	scope := beginProgram(prog)
	gl.Uniform1i(o.locs.fontTex, 0)
	scope.End()

	return o, nil
}

// buildTextQuads emits interleaved {x, y, u, v} vertices, two triangles per
// glyph, anchored at (x, y) top-left in pixels.
func buildTextQuads(text string, x, y, scale float32) []float32 {
	verts := make([]float32, 0, len(text)*6*4)
	du := 1.0 / float32(len(overlayCharset))
	penX := x
	for i := 0; i < len(text); i++ {
		slot := glyphAtlasIndex(text[i])
		u0 := float32(slot) * du
		u1 := u0 + du

		x0, y0 := penX, y
		x1, y1 := penX+glyphSize*scale, y+glyphSize*scale

		// row 0 of the atlas data is the glyph top, so v 0 is the top
		verts = append(verts,
			x0, y0, u0, 0,
			x0, y1, u0, 1,
			x1, y1, u1, 1,

			x0, y0, u0, 0,
			x1, y1, u1, 1,
			x1, y0, u1, 0,
		)
		penX += glyphSize * scale
	}
	return verts
}

// DrawText draws text at pixel position (x, y) against the given window
// size. Depth testing should be off.
func (o *TextOverlay) DrawText(text string, x, y, scale float32, color core.Color, screenW, screenH int) {
	verts := buildTextQuads(text, x, y, scale)
	if len(verts) == 0 {
		return
	}

	scope := beginProgram(o.program)
	defer scope.End()

	gl.Uniform2f(o.locs.screenSize, float32(screenW), float32(screenH))
	gl.Uniform4f(o.locs.textColor, color.R, color.G, color.B, color.A)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.atlasTex)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)/4))
	gl.BindVertexArray(0)
}

// Destroy releases the overlay's GPU resources.
func (o *TextOverlay) Destroy() {
	if o.atlasTex != 0 {
		gl.DeleteTextures(1, &o.atlasTex)
		o.atlasTex = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.program != 0 {
		gl.DeleteProgram(o.program)
		o.program = 0
	}
}
