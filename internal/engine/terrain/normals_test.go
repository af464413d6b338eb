package terrain

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/groundmesh/pkg/ground"
)

func normalLength(n [3]float32) float64 {
	return gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
}

func TestFlatNormalsPointUp(t *testing.T) {
	for _, method := range []NormalMethod{NormalAreaWeighted, NormalSobel} {
		mesh := NewBuilder().WithNormalMethod(method).Build(flatMap(4, 4, 1.0))
		for i, n := range mesh.Normals {
			if n[1] <= 0.99 {
				t.Errorf("%v: normal %d y = %g, want ~1.0", method, i, n[1])
			}
			if gomath.Abs(float64(n[0])) > 1e-5 || gomath.Abs(float64(n[2])) > 1e-5 {
				t.Errorf("%v: normal %d has lateral components: %v", method, i, n)
			}
		}
	}
}

func TestRampNormalsHaveXComponent(t *testing.T) {
	for _, method := range []NormalMethod{NormalAreaWeighted, NormalSobel} {
		mesh := NewBuilder().WithNormalMethod(method).Build(rampMap(8, 8, 1.0))

		// Interior vertex on an X-slope must tilt along X.
		interior := mesh.Normals[1*8+4]
		if gomath.Abs(float64(interior[0])) <= 0.01 {
			t.Errorf("%v: ramp normal has no X component: %v", method, interior)
		}
	}
}

func TestRampNormalsTiltAgainstSlope(t *testing.T) {
	// Height increases with x, so normals must lean toward -X.
	for _, method := range []NormalMethod{NormalAreaWeighted, NormalSobel} {
		mesh := NewBuilder().WithNormalMethod(method).Build(rampMap(8, 8, 1.0))
		interior := mesh.Normals[3*8+4]
		if interior[0] >= 0 {
			t.Errorf("%v: normal x = %g, want negative on a rising-x ramp", method, interior[0])
		}
		if interior[1] <= 0 {
			t.Errorf("%v: normal y = %g, want positive", method, interior[1])
		}
	}
}

func TestSobelNormalsAreUnitLength(t *testing.T) {
	mesh := NewBuilder().WithNormalMethod(NormalSobel).Build(rampMap(6, 6, 2.0))
	for i, n := range mesh.Normals {
		if l := normalLength(n); gomath.Abs(l-1.0) > 1e-5 {
			t.Errorf("normal %d length = %g, want 1.0", i, l)
		}
	}
}

func TestAreaWeightedNormalsAreUnitLength(t *testing.T) {
	hm := rampMap(6, 6, 1.0)
	hm.Set(3, 3, 20.0) // sharp spike to stress accumulation
	mesh := NewBuilder().Build(hm)
	for i, n := range mesh.Normals {
		if l := normalLength(n); gomath.Abs(l-1.0) > 1e-5 {
			t.Errorf("normal %d length = %g, want 1.0", i, l)
		}
	}
}

func TestDegenerateAccumulatorFallsBackToUp(t *testing.T) {
	// With no triangles at all the accumulator stays zero and must resolve
	// to straight up rather than a NaN normalize.
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}}
	normals := areaWeightedNormals(positions, nil)
	for i, n := range normals {
		if n != [3]float32{0, 1, 0} {
			t.Errorf("normal %d: got %v, want (0,1,0)", i, n)
		}
	}
}

func TestSobelClampsAtBorders(t *testing.T) {
	// A spike in the corner: border sampling must clamp, not wrap, so the
	// opposite corner stays flat.
	hm := flatMap(8, 8, 1.0)
	hm.Set(0, 0, 50.0)
	mesh := NewBuilder().WithNormalMethod(NormalSobel).Build(hm)

	far := mesh.Normals[7*8+7]
	if far[1] <= 0.99 {
		t.Errorf("far corner affected by opposite-corner spike: %v", far)
	}
}

func TestSobelScaleAffectsSteepness(t *testing.T) {
	// The same height delta over wider cells is a gentler slope, so the
	// normal must be closer to vertical at larger scale.
	small := NewBuilder().WithNormalMethod(NormalSobel).Build(rampMapFixedHeights(8, 8, 1.0))
	large := NewBuilder().WithNormalMethod(NormalSobel).Build(rampMapFixedHeights(8, 8, 4.0))

	idx := 4*8 + 4
	if large.Normals[idx][1] <= small.Normals[idx][1] {
		t.Errorf("normal y at scale 4 (%g) not greater than at scale 1 (%g)",
			large.Normals[idx][1], small.Normals[idx][1])
	}
}

// rampMapFixedHeights rises 1 world unit per cell regardless of scale.
func rampMapFixedHeights(w, h int, scale float32) *ground.HeightMap {
	hm := flatMap(w, h, scale)
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			hm.Set(x, z, float32(x))
		}
	}
	return hm
}
