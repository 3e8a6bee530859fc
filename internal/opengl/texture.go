package opengl

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hybrid-render/scene"
)

// UploadTexture pushes a decoded texture's pixels to the GPU and records
// the resulting handle on the texture. Idempotent.
func UploadTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID != 0 || len(tex.Pixels) == 0 {
		return
	}

	gl.GenTextures(1, &tex.GLID)
	gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(tex.Width), int32(tex.Height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(tex.Pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// DeleteTexture releases the GPU handle, if any. The CPU pixels stay.
func DeleteTexture(tex *scene.Texture) {
	if tex == nil || tex.GLID == 0 {
		return
	}
	gl.DeleteTextures(1, &tex.GLID)
	tex.GLID = 0
}
