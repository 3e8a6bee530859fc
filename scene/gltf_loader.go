package scene

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"hybrid-render/core"
	"hybrid-render/math"
)

// GLTFResult holds the meshes and textures loaded from a .glb / .gltf file.
// Before the first frame, upload every texture in Textures:
//
//	for _, tex := range result.Textures {
//	    opengl.UploadTexture(tex)
//	}
type GLTFResult struct {
	Meshes   []*Mesh    // one entry per mesh primitive, ready for the raster pass
	Textures []*Texture // textures that need GPU upload
}

// LoadGLTF opens a .glb or .gltf file and returns its triangle meshes with
// base-color materials baked into vertex colors or textures. Node transforms
// and PBR parameters beyond base color are ignored; the raster pass draws
// flat-shaded geometry.
func LoadGLTF(path string) (*GLTFResult, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	dir := filepath.Dir(path)
	result := &GLTFResult{}

	// Textures
	texCache := make([]*Texture, len(doc.Textures))
	for i, gt := range doc.Textures {
		if gt.Source == nil {
			continue
		}
		img := doc.Images[*gt.Source]

		var tex *Texture
		if img.BufferView != nil {
			// Binary GLB: image data lives in a buffer view
			raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
			if err != nil {
				fmt.Printf("gltf: image %d bufferview: %v\n", *gt.Source, err)
				continue
			}
			name := img.Name
			if name == "" {
				name = fmt.Sprintf("gltf_img_%d", *gt.Source)
			}
			tex, err = DecodeTexture(name, raw)
			if err != nil {
				fmt.Printf("gltf: image %d decode: %v\n", *gt.Source, err)
				continue
			}
		} else if img.URI != "" && !img.IsEmbeddedResource() {
			// External file referenced by relative URI
			tex, err = LoadTexture(filepath.Join(dir, img.URI))
			if err != nil {
				fmt.Printf("gltf: image %d (%s): %v\n", *gt.Source, img.URI, err)
				continue
			}
		}

		if tex != nil {
			texCache[i] = tex
			result.Textures = append(result.Textures, tex)
		}
	}

	// Mesh primitives
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			m, err := loadGLTFPrimitive(doc, gm.Name, pi, *prim)
			if err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v\n", mi, pi, err)
				continue
			}
			if prim.Material != nil && *prim.Material < len(doc.Materials) {
				applyGLTFMaterial(m, doc.Materials[*prim.Material], texCache)
			}
			result.Meshes = append(result.Meshes, m)
		}
	}

	return result, nil
}

// applyGLTFMaterial bakes the base-color factor into vertex colors and
// attaches the base-color texture when one is referenced.
func applyGLTFMaterial(m *Mesh, gm *gltf.Material, texCache []*Texture) {
	pbr := gm.PBRMetallicRoughness
	if pbr == nil {
		return
	}
	cf := pbr.BaseColorFactorOrDefault()
	col := core.Color{
		R: float32(cf[0]), G: float32(cf[1]),
		B: float32(cf[2]), A: float32(cf[3]),
	}
	for i := range m.Vertices {
		m.Vertices[i].Color = col
	}
	if pbr.BaseColorTexture != nil {
		idx := int(pbr.BaseColorTexture.Index)
		if idx < len(texCache) && texCache[idx] != nil {
			m.Texture = texCache[idx]
		}
	}
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	// Positions are required
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("indices: %w", err)
		}
	}

	return &Mesh{Name: name, Vertices: verts, Indices: indices}, nil
}
