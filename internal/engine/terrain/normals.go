package terrain

import (
	"github.com/Faultbox/groundmesh/pkg/ground"
	"github.com/Faultbox/groundmesh/pkg/math"
)

// normalEpsilon is the accumulator length below which a vertex normal is
// treated as degenerate and replaced by straight up.
const normalEpsilon = 1.1920929e-07

// areaWeightedNormals computes one smooth normal per vertex by accumulating
// the unnormalized face normal of every adjacent triangle, then normalizing.
// The cross product magnitude is twice the triangle area, so larger triangles
// automatically weigh more. This reflects the rendered geometry exactly,
// which matters on jagged or eroded terrain where a continuous-derivative
// approximation diverges from the actual surface.
//
// Triangles are visited in index-buffer order, so the accumulation is
// deterministic for a given mesh.
func areaWeightedNormals(positions [][3]float32, indices []uint32) [][3]float32 {
	acc := make([]math.Vec3, len(positions))

	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i]
		i1 := indices[i+1]
		i2 := indices[i+2]

		p0 := vec3(positions[i0])
		p1 := vec3(positions[i1])
		p2 := vec3(positions[i2])

		face := p1.Sub(p0).Cross(p2.Sub(p0))
		acc[i0] = acc[i0].Add(face)
		acc[i1] = acc[i1].Add(face)
		acc[i2] = acc[i2].Add(face)
	}

	normals := make([][3]float32, len(positions))
	for i, n := range acc {
		normals[i] = normalizeOrUp(n)
	}
	return normals
}

// sobelNormals computes per-vertex normals by convolving the height grid
// with the fixed 3x3 Sobel kernel pair. Samples outside the grid are clamped
// to the border (never wrapped). The kernel weights sum to 8 per sample
// spacing, i.e. the gradients carry an implicit 1/(8*scale) factor; using
// 8*scale as the Y component undoes it so the normal stays commensurate
// with world units.
func sobelNormals(hm *ground.HeightMap) [][3]float32 {
	w := hm.Width()
	h := hm.Height()
	s := hm.Scale()

	sample := func(x, z int) float32 {
		if x < 0 {
			x = 0
		} else if x >= w {
			x = w - 1
		}
		if z < 0 {
			z = 0
		} else if z >= h {
			z = h - 1
		}
		return hm.Get(x, z)
	}

	normals := make([][3]float32, w*h)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			tl := sample(x-1, z-1)
			t := sample(x, z-1)
			tr := sample(x+1, z-1)
			l := sample(x-1, z)
			r := sample(x+1, z)
			bl := sample(x-1, z+1)
			bm := sample(x, z+1)
			br := sample(x+1, z+1)

			// Horizontal kernel [[-1,0,1],[-2,0,2],[-1,0,1]]
			gx := (tr + 2*r + br) - (tl + 2*l + bl)
			// Vertical kernel [[-1,-2,-1],[0,0,0],[1,2,1]]
			gz := (bl + 2*bm + br) - (tl + 2*t + tr)

			normals[z*w+x] = normalizeOrUp(math.Vec3{X: -gx, Y: 8 * s, Z: -gz})
		}
	}
	return normals
}

// normalizeOrUp normalizes v, falling back to straight up when the vector is
// too short to normalize safely.
func normalizeOrUp(v math.Vec3) [3]float32 {
	l := v.Length()
	if l <= normalEpsilon {
		return [3]float32{0, 1, 0}
	}
	return [3]float32{v.X / l, v.Y / l, v.Z / l}
}

func vec3(p [3]float32) math.Vec3 {
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}
