package terrain

import (
	"fmt"

	"github.com/Faultbox/groundmesh/pkg/ground"
)

// minUVTileSize is the smallest accepted UV tile size (float32 machine
// epsilon), preventing division by zero in UV generation.
const minUVTileSize = 1.1920929e-07

// Builder configures mesh generation from a heightmap. The zero value is not
// usable; construct with NewBuilder and adjust via the With methods, which
// return modified copies so a configured builder can be reused and shared.
type Builder struct {
	uvTileSize   float32
	normalMethod NormalMethod
}

// NewBuilder returns a builder with uvTileSize=1 (one texture tile per world
// unit) and area-weighted normals.
func NewBuilder() Builder {
	return Builder{uvTileSize: 1.0, normalMethod: NormalAreaWeighted}
}

// WithUVTileSize sets the world-space size of one UV tile.
// A value equal to the heightmap scale tiles the texture once per grid cell;
// a value equal to the world width stretches it over the whole mesh.
// Clamped to a positive minimum to avoid division by zero.
func (b Builder) WithUVTileSize(size float32) Builder {
	if size < minUVTileSize {
		size = minUVTileSize
	}
	b.uvTileSize = size
	return b
}

// WithNormalMethod selects the normal estimation strategy.
func (b Builder) WithNormalMethod(m NormalMethod) Builder {
	b.normalMethod = m
	return b
}

// Build generates the terrain mesh. The mesh covers world space
// [0, worldWidth] x [0, worldDepth] in the XZ plane with heights along Y.
// Vertices are emitted in row-major (z*width+x) order; each grid quad
// produces two counter-clockwise triangles whose normals face +Y on flat
// terrain. Build is a pure function of its inputs: identical heightmap and
// configuration always produce an identical mesh.
//
// Panics if the heightmap is smaller than 2x2, since no quad can exist.
func (b Builder) Build(hm *ground.HeightMap) *Mesh {
	if hm.Width() < 2 || hm.Height() < 2 {
		panic(fmt.Sprintf("terrain: heightmap must be at least 2x2 to build a mesh (got %dx%d)",
			hm.Width(), hm.Height()))
	}

	w := hm.Width()
	h := hm.Height()
	s := hm.Scale()

	vertexCount := w * h
	positions := make([][3]float32, 0, vertexCount)
	uvs := make([][2]float32, 0, vertexCount)

	bounds := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}

	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			worldX := float32(x) * s
			worldZ := float32(z) * s
			worldY := hm.Get(x, z)

			p := [3]float32{worldX, worldY, worldZ}
			positions = append(positions, p)
			uvs = append(uvs, [2]float32{worldX / b.uvTileSize, worldZ / b.uvTileSize})
			updateBounds(&bounds, p)
		}
	}

	// Each quad (x,z)..(x+1,z+1) emits two CCW triangles:
	//   tl──tr
	//   │╲  │     Triangle 1: tl, bl, tr
	//   │ ╲ │     Triangle 2: tr, bl, br
	//   bl──br
	quadCount := (w - 1) * (h - 1)
	indices := make([]uint32, 0, quadCount*6)

	for z := 0; z < h-1; z++ {
		for x := 0; x < w-1; x++ {
			tl := uint32(z*w + x)
			tr := tl + 1
			bl := uint32((z+1)*w + x)
			br := bl + 1

			indices = append(indices, tl, bl, tr)
			indices = append(indices, tr, bl, br)
		}
	}

	var normals [][3]float32
	switch b.normalMethod {
	case NormalSobel:
		normals = sobelNormals(hm)
	default:
		normals = areaWeightedNormals(positions, indices)
	}

	return &Mesh{
		Positions: positions,
		Normals:   normals,
		UVs:       uvs,
		Indices:   indices,
		Bounds:    bounds,
	}
}
