package scene

import (
	"hybrid-render/core"
	"hybrid-render/math"
)

// DrawMode controls the OpenGL primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // gl.TRIANGLES (default)
	DrawLines                     // gl.LINES, pairs of indices form line segments
)

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	DrawMode DrawMode // defaults to DrawTriangles

	// Texture sampled in the raster pass; nil for vertex-color meshes.
	Texture *Texture

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	// Do not access directly; use the renderer's API.
	GPUData interface{}
}

// CreateCube builds a solid axis-aligned cube of the given edge length,
// centered on the origin, colored with col.
func CreateCube(size float32, col core.Color) *Mesh {
	s := size / 2

	type face struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}
	faces := []face{
		{math.Vec3{X: 0, Y: 0, Z: 1}, [4]math.Vec3{{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s}}},
		{math.Vec3{X: 0, Y: 0, Z: -1}, [4]math.Vec3{{X: s, Y: -s, Z: -s}, {X: -s, Y: -s, Z: -s}, {X: -s, Y: s, Z: -s}, {X: s, Y: s, Z: -s}}},
		{math.Vec3{X: 0, Y: 1, Z: 0}, [4]math.Vec3{{X: -s, Y: s, Z: s}, {X: s, Y: s, Z: s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s}}},
		{math.Vec3{X: 0, Y: -1, Z: 0}, [4]math.Vec3{{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: -s, Z: s}, {X: -s, Y: -s, Z: s}}},
		{math.Vec3{X: 1, Y: 0, Z: 0}, [4]math.Vec3{{X: s, Y: -s, Z: s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: s, Y: s, Z: s}}},
		{math.Vec3{X: -1, Y: 0, Z: 0}, [4]math.Vec3{{X: -s, Y: -s, Z: -s}, {X: -s, Y: -s, Z: s}, {X: -s, Y: s, Z: s}, {X: -s, Y: s, Z: -s}}},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	m := &Mesh{Name: "Cube"}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for i, p := range f.corners {
			m.Vertices = append(m.Vertices, core.Vertex{
				Position: p,
				Normal:   f.normal,
				UV:       uvs[i],
				Color:    col,
			})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}

// CreateCubeWires builds the 12-edge wireframe outline of a cube, rendered
// as GL_LINES.
func CreateCubeWires(size float32, col core.Color) *Mesh {
	s := size / 2

	corners := [8]math.Vec3{
		{X: -s, Y: -s, Z: -s}, {X: s, Y: -s, Z: -s}, {X: s, Y: s, Z: -s}, {X: -s, Y: s, Z: -s},
		{X: -s, Y: -s, Z: s}, {X: s, Y: -s, Z: s}, {X: s, Y: s, Z: s}, {X: -s, Y: s, Z: s},
	}
	edges := [12][2]uint32{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connectors
	}

	m := &Mesh{Name: "CubeWires", DrawMode: DrawLines}
	for _, p := range corners {
		m.Vertices = append(m.Vertices, core.Vertex{
			Position: p,
			Normal:   math.Vec3Up,
			Color:    col,
		})
	}
	for _, e := range edges {
		m.Indices = append(m.Indices, e[0], e[1])
	}
	return m
}

// CreateGrid builds a flat line grid on the XZ plane.
//
//	slices:  number of cells along each axis
//	spacing: world-space cell size
//
// The grid spans slices*spacing in both directions, centered on the origin.
func CreateGrid(slices int, spacing float32) *Mesh {
	if slices < 1 {
		slices = 1
	}

	half := float32(slices) * spacing / 2
	gray := core.Color{R: 0.45, G: 0.45, B: 0.45, A: 1}

	m := &Mesh{Name: "Grid", DrawMode: DrawLines}

	addLine := func(a, b math.Vec3) {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices,
			core.Vertex{Position: a, Normal: math.Vec3Up, Color: gray},
			core.Vertex{Position: b, Normal: math.Vec3Up, Color: gray},
		)
		m.Indices = append(m.Indices, base, base+1)
	}

	for i := 0; i <= slices; i++ {
		d := -half + float32(i)*spacing
		addLine(math.Vec3{X: d, Y: 0, Z: -half}, math.Vec3{X: d, Y: 0, Z: half})
		addLine(math.Vec3{X: -half, Y: 0, Z: d}, math.Vec3{X: half, Y: 0, Z: d})
	}
	return m
}
