package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"hybrid-render/math"
)

// raymarchLocs is resolved once after link, like rasterLocs.
type raymarchLocs struct {
	camPos       int32
	camDir       int32
	screenCenter int32
}

// RaymarchPass renders a signed-distance-field scene as a fullscreen pass.
// Misses discard the fragment, hits write colour plus gl_FragDepth in the
// shared eye-distance convention, so rasterized geometry drawn into the
// same target occludes and is occluded correctly.
type RaymarchPass struct {
	program uint32
	vao     uint32
	locs    raymarchLocs
}

// Fullscreen triangle from gl_VertexID; no vertex buffers needed.
const raymarchVertSrc = `
#version 410 core
void main() {
    vec2 pos = vec2(float((gl_VertexID & 1) << 2) - 1.0,
                    float((gl_VertexID & 2) << 1) - 1.0);
    gl_Position = vec4(pos, 0.0, 1.0);
}
` + "\x00"

// The camera direction uniform carries the field of view in its magnitude:
// length(camDir) == 1/tan(fovy/2). Dividing the pixel offset by
// screenCenter.y then gives rays that match the raster projection exactly.
const raymarchFragSrc = `
#version 410 core
out vec4 outColor;

uniform vec3 camPos;
uniform vec3 camDir;
uniform vec2 screenCenter;
` + depthConvSrc + `
const int   MAX_STEPS = 100;
const float MAX_DIST  = 100.0;
const float SURF_DIST = 0.001;

float sdSphere(vec3 p, vec3 c, float r) {
    return length(p - c) - r;
}

float sdTorus(vec3 p, vec3 c, vec2 t) {
    vec3 q3 = p - c;
    vec2 q = vec2(length(q3.xz) - t.x, q3.y);
    return length(q) - t.y;
}

float sdPlane(vec3 p, float h) {
    return p.y - h;
}

float sceneDist(vec3 p) {
    float d = sdPlane(p, 0.0);
    d = min(d, sdSphere(p, vec3(-1.0, 0.75, 0.0), 0.75));
    d = min(d, sdTorus(p, vec3(1.0, 0.5, 0.0), vec2(0.6, 0.25)));
    return d;
}

vec3 sceneNormal(vec3 p) {
    vec2 e = vec2(0.001, 0.0);
    return normalize(vec3(
        sceneDist(p + e.xyy) - sceneDist(p - e.xyy),
        sceneDist(p + e.yxy) - sceneDist(p - e.yxy),
        sceneDist(p + e.yyx) - sceneDist(p - e.yyx)));
}

float rayMarch(vec3 ro, vec3 rd) {
    float dist = 0.0;
    for (int i = 0; i < MAX_STEPS; i++) {
        vec3 p = ro + rd * dist;
        float d = sceneDist(p);
        dist += d;
        if (d < SURF_DIST || dist > MAX_DIST) break;
    }
    return dist;
}

void main() {
    vec2 offset = (gl_FragCoord.xy - screenCenter) / screenCenter.y;
    vec3 right  = normalize(cross(camDir, vec3(0.0, 1.0, 0.0)));
    vec3 up     = normalize(cross(right, camDir));
    vec3 rayDir = normalize(camDir + right * offset.x + up * offset.y);

    float dist = rayMarch(camPos, rayDir);
    if (dist >= MAX_DIST) discard;

    vec3  p        = camPos + rayDir * dist;
    vec3  n        = sceneNormal(p);
    vec3  lightDir = normalize(vec3(0.5, -1.0, -0.5));
    float diff     = max(dot(n, -lightDir), 0.0);

    vec3 base = vec3(0.9, 0.4, 0.2);
    if (p.y < 0.01) {
        // checker on the SDF ground
        float c = mod(floor(p.x) + floor(p.z), 2.0);
        base = mix(vec3(0.35), vec3(0.65), c);
    }

    outColor     = vec4(base * (0.3 + 0.7 * diff), 1.0);
    gl_FragDepth = calcDepth(p, camPos);
}
` + "\x00"

// NewRaymarchPass compiles the raymarch program and resolves its uniforms.
func NewRaymarchPass() (*RaymarchPass, error) {
	prog, err := newProgram(raymarchVertSrc, raymarchFragSrc)
	if err != nil {
		return nil, fmt.Errorf("raymarch shader: %w", err)
	}

	p := &RaymarchPass{
		program: prog,
		locs: raymarchLocs{
			camPos:       uniformLoc(prog, "camPos"),
			camDir:       uniformLoc(prog, "camDir"),
			screenCenter: uniformLoc(prog, "screenCenter"),
		},
	}
	gl.GenVertexArrays(1, &p.vao)
	return p, nil
}

// SetScreenCenter uploads half the target resolution. Only needed at
// creation time and when the target is resized.
func (p *RaymarchPass) SetScreenCenter(width, height int) {
	scope := beginProgram(p.program)
	gl.Uniform2f(p.locs.screenCenter, float32(width)/2.0, float32(height)/2.0)
	scope.End()
}

// SetCamera uploads the per-frame camera uniforms. camDir must already be
// scaled by the camera distance so the shader recovers the field of view.
func (p *RaymarchPass) SetCamera(camPos, camDir math.Vec3) {
	scope := beginProgram(p.program)
	gl.Uniform3f(p.locs.camPos, camPos.X, camPos.Y, camPos.Z)
	gl.Uniform3f(p.locs.camDir, camDir.X, camDir.Y, camDir.Z)
	scope.End()
}

// Draw renders the fullscreen pass. The caller is responsible for having
// the target bound and depth testing enabled.
func (p *RaymarchPass) Draw() {
	scope := beginProgram(p.program)
	defer scope.End()

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases the pass's GPU resources.
func (p *RaymarchPass) Destroy() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}
