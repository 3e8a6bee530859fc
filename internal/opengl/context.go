package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Init loads OpenGL function pointers. Must be called once after the GLFW
// window context is made current, before any other call in this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)
	return nil
}

// ── Scoped state ──────────────────────────────────────────────────────────────
//
// The underlying API is process-global mutable state. Each scope records the
// state it replaces and restores it on End, so passes can nest and error
// exits cannot leave a stale binding behind.

// programScope binds a shader program for the duration of a pass.
type programScope struct {
	prev int32
}

func beginProgram(prog uint32) programScope {
	var prev int32
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &prev)
	gl.UseProgram(prog)
	return programScope{prev: prev}
}

func (s programScope) End() {
	gl.UseProgram(uint32(s.prev))
}

// DepthScope enables the depth test for the duration of a pass. A fullscreen
// quad draw does not enable it implicitly, so the raymarch pass needs this
// before writing gl_FragDepth.
type DepthScope struct {
	wasEnabled bool
}

func BeginDepthTest() DepthScope {
	s := DepthScope{wasEnabled: gl.IsEnabled(gl.DEPTH_TEST)}
	gl.Enable(gl.DEPTH_TEST)
	// LEQUAL so wireframe outlines coincident with mesh surfaces survive
	gl.DepthFunc(gl.LEQUAL)
	return s
}

func (s DepthScope) End() {
	if !s.wasEnabled {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Clear clears the color and depth buffers of the current framebuffer.
func Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetViewport sets the viewport in pixels.
func SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}

// uniformLoc resolves a uniform location by name. Returns -1 when the name
// is not active in the program; writing to -1 is a harmless no-op in GL.
func uniformLoc(prog uint32, name string) int32 {
	return gl.GetUniformLocation(prog, gl.Str(name+"\x00"))
}
