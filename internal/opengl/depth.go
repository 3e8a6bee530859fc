package opengl

// Near/far planes of the shared depth convention. Every pass that writes
// gl_FragDepth into the offscreen target uses these.
const (
	depthNear = 0.01
	depthFar  = 1000.0
)

// depthConvSrc maps eye distance to a depth-buffer value using the inverse
// distance mapping 1/d, remapped so depthNear lands at 0 and depthFar at 1.
// Both the raster and the raymarch fragment shaders include this snippet so
// their depth outputs are directly comparable.
const depthConvSrc = `
const float depthNear = 0.01;
const float depthFar  = 1000.0;

float calcDepth(vec3 worldPos, vec3 eye) {
    float dist = length(worldPos - eye);
    return (1.0/depthNear - 1.0/dist) / (1.0/depthNear - 1.0/depthFar);
}
`

// CalcDepth is the CPU mirror of the shader depth mapping, used to reason
// about occlusion without a GL context.
func CalcDepth(dist float32) float32 {
	return (1.0/depthNear - 1.0/dist) / (1.0/depthNear - 1.0/depthFar)
}

// DistFromDepth inverts CalcDepth.
func DistFromDepth(depth float32) float32 {
	inv := 1.0/depthNear - depth*(1.0/depthNear-1.0/depthFar)
	return 1.0 / inv
}
