// Package collider adapts heightmap data for physics heightfield shapes.
package collider

import "github.com/Faultbox/groundmesh/pkg/ground"

// HeightfieldShape is the raw input a physics engine needs to build a static
// heightfield collision shape: a height matrix plus the world-space extent.
//
// Heights is indexed [x][z] — transposed from the heightmap's row-major
// z-then-x layout, because heightfield colliders conventionally take rows
// along the X axis. Scale is the total world extent per axis; Y is 1 because
// heights are already in world units.
type HeightfieldShape struct {
	Heights [][]float32
	Scale   [3]float32
}

// BuildHeightfield transposes a heightmap into collider input. Pure data
// shuffle, no geometry is generated.
func BuildHeightfield(hm *ground.HeightMap) HeightfieldShape {
	w := hm.Width()
	h := hm.Height()

	heights := make([][]float32, w)
	for x := 0; x < w; x++ {
		heights[x] = make([]float32, h)
		for z := 0; z < h; z++ {
			heights[x][z] = hm.Get(x, z)
		}
	}

	return HeightfieldShape{
		Heights: heights,
		Scale:   [3]float32{hm.WorldWidth(), 1.0, hm.WorldDepth()},
	}
}
