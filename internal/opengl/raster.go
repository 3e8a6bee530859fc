package opengl

import (
	"fmt"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hybrid-render/core"
	"hybrid-render/math"
	"hybrid-render/scene"
)

// GPUMesh holds the OpenGL buffer objects for an uploaded mesh.
type GPUMesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
	HasIndices bool
}

// rasterLocs is the uniform location table of the raster program, resolved
// exactly once after link. The locations are only meaningful against that
// program.
type rasterLocs struct {
	mvp        int32
	model      int32
	camPos     int32
	albedoTex  int32
	hasTexture int32
}

// RasterPipeline draws conventional triangle/line geometry into the shared
// offscreen target. Its fragment shader writes gl_FragDepth in the same
// eye-distance convention the raymarch pass uses, which is what lets the
// two passes occlude each other in one depth buffer.
type RasterPipeline struct {
	program uint32
	locs    rasterLocs

	gpuMeshes map[*scene.Mesh]*GPUMesh
}

// vertex shader: MVP transform, world-space position for the depth
// calculation, colour/normal/uv passthrough.
const rasterVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;
layout(location = 3) in vec4 inColor;

uniform mat4 mvp;
uniform mat4 model;

out vec4 fragColor;
out vec3 fragNormal;
out vec2 fragUV;
out vec3 fragWorldPos;

void main() {
    gl_Position  = mvp * vec4(inPosition, 1.0);
    fragColor    = inColor;
    fragNormal   = mat3(model) * inNormal;
    fragUV       = inUV;
    fragWorldPos = (model * vec4(inPosition, 1.0)).xyz;
}
` + "\x00"

// fragment shader: simple directional shading plus explicit depth output.
// Once one pass writes gl_FragDepth, every pass sharing the depth buffer
// must write it in the same convention, see depthConvSrc.
const rasterFragSrc = `
#version 410 core
in vec4 fragColor;
in vec3 fragNormal;
in vec2 fragUV;
in vec3 fragWorldPos;

out vec4 outColor;

uniform vec3      camPos;
uniform sampler2D albedoTex;
uniform bool      hasTexture;
` + depthConvSrc + `
void main() {
    vec3  lightDir = normalize(vec3(0.5, -1.0, -0.5));
    float diff     = max(dot(normalize(fragNormal), -lightDir), 0.0);
    vec4  base     = fragColor;
    if (hasTexture) {
        base *= texture(albedoTex, fragUV);
    }
    vec3 lit = base.rgb * (0.35 + 0.65 * diff);
    outColor = vec4(lit, base.a);

    gl_FragDepth = calcDepth(fragWorldPos, camPos);
}
` + "\x00"

// NewRasterPipeline compiles the raster program and resolves its uniform
// table.
func NewRasterPipeline() (*RasterPipeline, error) {
	prog, err := newProgram(rasterVertSrc, rasterFragSrc)
	if err != nil {
		return nil, fmt.Errorf("raster shader: %w", err)
	}

	p := &RasterPipeline{
		program: prog,
		locs: rasterLocs{
			mvp:        uniformLoc(prog, "mvp"),
			model:      uniformLoc(prog, "model"),
			camPos:     uniformLoc(prog, "camPos"),
			albedoTex:  uniformLoc(prog, "albedoTex"),
			hasTexture: uniformLoc(prog, "hasTexture"),
		},
		gpuMeshes: make(map[*scene.Mesh]*GPUMesh),
	}

	scope := beginProgram(prog)
	gl.Uniform1i(p.locs.albedoTex, 0) // albedo on texture unit 0
	scope.End()

	return p, nil
}

// SetCamera uploads the eye position used by the shared depth calculation.
// Call once per frame before drawing meshes.
func (p *RasterPipeline) SetCamera(camPos math.Vec3) {
	scope := beginProgram(p.program)
	gl.Uniform3f(p.locs.camPos, camPos.X, camPos.Y, camPos.Z)
	scope.End()
}

// DrawMesh draws a mesh with the given MVP and model matrices.
func (p *RasterPipeline) DrawMesh(mesh *scene.Mesh, mvp, model math.Mat4) {
	gpu := p.ensureUploaded(mesh)
	if gpu == nil {
		return
	}

	scope := beginProgram(p.program)
	defer scope.End()

	gl.UniformMatrix4fv(p.locs.mvp, 1, false, (*float32)(unsafe.Pointer(&mvp[0][0])))
	gl.UniformMatrix4fv(p.locs.model, 1, false, (*float32)(unsafe.Pointer(&model[0][0])))

	if tex := mesh.Texture; tex != nil && tex.GLID != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex.GLID)
		gl.Uniform1i(p.locs.hasTexture, 1)
	} else {
		gl.Uniform1i(p.locs.hasTexture, 0)
	}

	primitive := uint32(gl.TRIANGLES)
	if mesh.DrawMode == scene.DrawLines {
		primitive = gl.LINES
	}

	gl.BindVertexArray(gpu.VAO)
	if gpu.HasIndices {
		gl.DrawElements(primitive, gpu.IndexCount, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(primitive, 0, int32(len(mesh.Vertices)))
	}
	gl.BindVertexArray(0)
}

// ReleaseMesh frees GPU buffers for the given mesh.
func (p *RasterPipeline) ReleaseMesh(mesh *scene.Mesh) {
	if gpu, ok := p.gpuMeshes[mesh]; ok {
		gl.DeleteVertexArrays(1, &gpu.VAO)
		gl.DeleteBuffers(1, &gpu.VBO)
		if gpu.HasIndices {
			gl.DeleteBuffers(1, &gpu.EBO)
		}
		delete(p.gpuMeshes, mesh)
		mesh.GPUData = nil
	}
}

// Destroy releases all GPU resources held by the pipeline.
func (p *RasterPipeline) Destroy() {
	for mesh := range p.gpuMeshes {
		p.ReleaseMesh(mesh)
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

// ensureUploaded uploads vertex/index data if not already done.
func (p *RasterPipeline) ensureUploaded(mesh *scene.Mesh) *GPUMesh {
	if gpu, ok := p.gpuMeshes[mesh]; ok {
		return gpu
	}
	if len(mesh.Vertices) == 0 {
		return nil
	}

	stride := int32(unsafe.Sizeof(core.Vertex{}))

	gpu := &GPUMesh{
		IndexCount: int32(len(mesh.Indices)),
		HasIndices: len(mesh.Indices) > 0,
	}

	gl.GenVertexArrays(1, &gpu.VAO)
	gl.GenBuffers(1, &gpu.VBO)
	gl.BindVertexArray(gpu.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, gpu.VBO)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(mesh.Vertices)*int(stride),
		gl.Ptr(mesh.Vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	posOff := int(unsafe.Offsetof(v.Position))
	normOff := int(unsafe.Offsetof(v.Normal))
	uvOff := int(unsafe.Offsetof(v.UV))
	colorOff := int(unsafe.Offsetof(v.Color))

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(posOff))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(normOff))

	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(uvOff))

	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 4, gl.FLOAT, false, stride, gl.PtrOffset(colorOff))

	if gpu.HasIndices {
		gl.GenBuffers(1, &gpu.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gpu.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
			len(mesh.Indices)*4,
			gl.Ptr(mesh.Indices),
			gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)

	p.gpuMeshes[mesh] = gpu
	mesh.GPUData = gpu
	return gpu
}
