// Package picking converts screen clicks into terrain hits.
package picking

import (
	gomath "math"

	"github.com/Faultbox/groundmesh/pkg/ground"
	"github.com/Faultbox/groundmesh/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    [3]float32
	Direction [3]float32 // Normalized direction
}

// Hit describes where a ray met the terrain surface.
type Hit struct {
	Point [3]float32 // world-space hit position
	CellX int        // grid cell containing the hit
	CellZ int
}

// ScreenToRay converts screen coordinates to a world-space ray.
// screenX, screenY are pixel coordinates, viewportW/H are viewport dimensions.
// invViewProj is the inverse of the view-projection matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := (2.0*screenX/viewportW - 1.0)
	ndcY := (1.0 - 2.0*screenY/viewportH) // Flip Y

	// Unproject near and far points
	nearPoint := math.Vec4{ndcX, ndcY, -1.0, 1.0}
	farPoint := math.Vec4{ndcX, ndcY, 1.0, 1.0}

	nearWorld := invViewProj.MulVec4(nearPoint)
	farWorld := invViewProj.MulVec4(farPoint)

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := [3]float32{nearWorld[0], nearWorld[1], nearWorld[2]}
	dir := [3]float32{
		farWorld[0] - nearWorld[0],
		farWorld[1] - nearWorld[1],
		farWorld[2] - nearWorld[2],
	}

	rayLen := float32(gomath.Sqrt(float64(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])))
	if rayLen > 0 {
		dir[0] /= rayLen
		dir[1] /= rayLen
		dir[2] /= rayLen
	}

	return Ray{Origin: origin, Direction: dir}
}

// IntersectPlaneY intersects a ray with a horizontal plane at the given Y level.
// Returns the intersection point (X, Z) and whether the intersection is valid.
func (r Ray) IntersectPlaneY(planeY float32) (x, z float32, ok bool) {
	// Ray: P = Origin + t * Direction
	// Plane: Y = planeY
	if gomath.Abs(float64(r.Direction[1])) < 0.001 {
		return 0, 0, false // Ray parallel to plane
	}

	t := (planeY - r.Origin[1]) / r.Direction[1]
	if t < 0 {
		return 0, 0, false // Intersection behind ray origin
	}

	x = r.Origin[0] + t*r.Direction[0]
	z = r.Origin[2] + t*r.Direction[2]
	return x, z, true
}

// IntersectHeightMap marches the ray against the height field and returns the
// first point where it dips below the interpolated surface. The march steps
// half a cell at a time and refines the hit by bisection, which is accurate
// enough for click picking.
func (r Ray) IntersectHeightMap(hm *ground.HeightMap) (Hit, bool) {
	minY, maxY := heightRange(hm)

	tEnter, tExit, ok := r.clipToField(hm.WorldWidth(), hm.WorldDepth(), minY, maxY)
	if !ok {
		return Hit{}, false
	}

	step := hm.Scale() * 0.5
	prevT := tEnter
	entry := r.at(prevT)
	if entry[1] <= hm.SampleWorld(entry[0], entry[2])+1e-4 {
		// Ray enters the field at or below ground level; the entry is the hit.
		// This also covers flat terrain, where the bounding box is paper thin.
		return r.hitAt(prevT, hm), true
	}

	for t := tEnter + step; t <= tExit; t += step {
		p := r.at(t)
		if p[1] < hm.SampleWorld(p[0], p[2]) {
			return r.hitAt(r.bisect(prevT, t, hm), hm), true
		}
		prevT = t
	}
	return Hit{}, false
}

func (r Ray) at(t float32) [3]float32 {
	return [3]float32{
		r.Origin[0] + t*r.Direction[0],
		r.Origin[1] + t*r.Direction[1],
		r.Origin[2] + t*r.Direction[2],
	}
}

// bisect narrows [above, below] down to the surface crossing.
func (r Ray) bisect(above, below float32, hm *ground.HeightMap) float32 {
	for i := 0; i < 16; i++ {
		mid := (above + below) / 2
		p := r.at(mid)
		if p[1] < hm.SampleWorld(p[0], p[2]) {
			below = mid
		} else {
			above = mid
		}
	}
	return below
}

func (r Ray) hitAt(t float32, hm *ground.HeightMap) Hit {
	p := r.at(t)
	cellX := int(p[0] / hm.Scale())
	cellZ := int(p[2] / hm.Scale())
	if cellX < 0 {
		cellX = 0
	}
	if cellZ < 0 {
		cellZ = 0
	}
	if cellX > hm.Width()-1 {
		cellX = hm.Width() - 1
	}
	if cellZ > hm.Height()-1 {
		cellZ = hm.Height() - 1
	}
	return Hit{Point: p, CellX: cellX, CellZ: cellZ}
}

// clipToField clips the ray to the field's bounding box using the slab method.
// Returns the parametric entry and exit distances.
func (r Ray) clipToField(worldW, worldD, minY, maxY float32) (tEnter, tExit float32, ok bool) {
	tmin := float32(0)
	tmax := float32(gomath.MaxFloat32)

	bounds := [3][2]float32{
		{0, worldW},
		{minY, maxY},
		{0, worldD},
	}
	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (bounds[axis][0] - r.Origin[axis]) / r.Direction[axis]
			t2 := (bounds[axis][1] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < bounds[axis][0] || r.Origin[axis] > bounds[axis][1] {
			return 0, 0, false
		}
	}

	if tmax < tmin {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func heightRange(hm *ground.HeightMap) (min, max float32) {
	min, max = hm.Get(0, 0), hm.Get(0, 0)
	for z := 0; z < hm.Height(); z++ {
		for x := 0; x < hm.Width(); x++ {
			v := hm.Get(x, z)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}
