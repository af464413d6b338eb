// Package terrain converts heightmap grids into renderable mesh geometry.
package terrain

// NormalMethod selects the per-vertex normal estimation strategy.
type NormalMethod int

const (
	// NormalAreaWeighted accumulates unnormalized face normals of adjacent
	// triangles at each vertex, then normalizes. Larger triangles contribute
	// proportionally more, matching the rendered geometry exactly. Default.
	NormalAreaWeighted NormalMethod = iota

	// NormalSobel estimates height gradients with a 3x3 Sobel filter over
	// the grid and derives the normal from them. Smoother on noisy terrain
	// but approximates the surface rather than the actual triangles.
	NormalSobel
)

// String returns the config-file name of the method.
func (m NormalMethod) String() string {
	switch m {
	case NormalSobel:
		return "sobel"
	default:
		return "area_weighted"
	}
}

// ParseNormalMethod maps a config-file name to a NormalMethod.
// Unknown names fall back to NormalAreaWeighted.
func ParseNormalMethod(name string) NormalMethod {
	if name == "sobel" {
		return NormalSobel
	}
	return NormalAreaWeighted
}

// Mesh holds indexed triangle-list geometry ready for GPU upload.
// All attribute slices are indexed 0..len(Positions)-1 in row-major
// (z*width+x) grid order. A built mesh is never mutated.
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
	Bounds    Bounds
}

// Bounds holds the axis-aligned bounding box of the terrain.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

func updateBounds(b *Bounds, p [3]float32) {
	if p[0] < b.Min[0] {
		b.Min[0] = p[0]
	}
	if p[1] < b.Min[1] {
		b.Min[1] = p[1]
	}
	if p[2] < b.Min[2] {
		b.Min[2] = p[2]
	}
	if p[0] > b.Max[0] {
		b.Max[0] = p[0]
	}
	if p[1] > b.Max[1] {
		b.Max[1] = p[1]
	}
	if p[2] > b.Max[2] {
		b.Max[2] = p[2]
	}
}
