package ground

import "math"

// SplatMapper derives a texture blend WeightMap from a HeightMap using
// altitude bands with a slope override. Steep cells blend toward the rock
// layer regardless of altitude; flat cells blend through the low/mid/high
// layers by normalized height. Weights in every pixel sum to 255 so the
// shader needs no renormalization.
//
// Layer assignment: R = low (sand), G = mid (grass), B = rock, A = high (snow).
type SplatMapper struct {
	// Normalized altitude thresholds in [0,1], with linear blend margins.
	LowEnd    float32 // below this the low layer dominates
	HighStart float32 // above this the high layer dominates
	Blend     float32 // half-width of the transition between bands

	// Slope thresholds in rise-over-run units (dh per world unit).
	SlopeStart float32 // slope where rock starts to blend in
	SlopeEnd   float32 // slope where rock fully dominates
}

// DefaultSplatMapper returns thresholds tuned for normalized rolling terrain.
func DefaultSplatMapper() SplatMapper {
	return SplatMapper{
		LowEnd:     0.3,
		HighStart:  0.75,
		Blend:      0.08,
		SlopeStart: 0.6,
		SlopeEnd:   1.4,
	}
}

// Generate builds a WeightMap with one pixel per heightmap cell.
func (m SplatMapper) Generate(hm *HeightMap) *WeightMap {
	wm := NewWeightMap(hm.Width(), hm.Height())

	min, max := heightRange(hm)
	span := max - min
	if span == 0 {
		span = 1 // flat map: everything lands in the low band
	}

	for z := 0; z < hm.Height(); z++ {
		for x := 0; x < hm.Width(); x++ {
			t := (hm.Get(x, z) - min) / span
			rock := smoothband(m.cellSlope(hm, x, z), m.SlopeStart, m.SlopeEnd)

			low := 1 - smoothband(t, m.LowEnd-m.Blend, m.LowEnd+m.Blend)
			high := smoothband(t, m.HighStart-m.Blend, m.HighStart+m.Blend)
			mid := 1 - low - high
			if mid < 0 {
				mid = 0
			}

			flat := 1 - rock
			wm.Data[z*wm.Width+x] = quantizeWeights(low*flat, mid*flat, rock, high*flat)
		}
	}
	return wm
}

// cellSlope estimates rise-over-run at a cell from central differences,
// clamped at the grid borders.
func (m SplatMapper) cellSlope(hm *HeightMap, x, z int) float32 {
	x0, x1 := clampIndex(x-1, hm.Width()), clampIndex(x+1, hm.Width())
	z0, z1 := clampIndex(z-1, hm.Height()), clampIndex(z+1, hm.Height())

	dx := (hm.Get(x1, z) - hm.Get(x0, z)) / (float32(x1-x0) * hm.Scale())
	dz := (hm.Get(x, z1) - hm.Get(x, z0)) / (float32(z1-z0) * hm.Scale())
	return float32(math.Sqrt(float64(dx*dx + dz*dz)))
}

func heightRange(hm *HeightMap) (min, max float32) {
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

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// smoothband maps v into [0,1] linearly between lo and hi.
func smoothband(v, lo, hi float32) float32 {
	if hi <= lo {
		if v >= hi {
			return 1
		}
		return 0
	}
	t := (v - lo) / (hi - lo)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// quantizeWeights converts four non-negative weights into bytes that sum to
// exactly 255. The rounding remainder is handed to the largest channel so the
// dominant layer never loses precision.
func quantizeWeights(r, g, b, a float32) [4]uint8 {
	w := [4]float32{r, g, b, a}
	var total float32
	for _, v := range w {
		total += v
	}
	if total == 0 {
		return [4]uint8{255, 0, 0, 0}
	}

	var out [4]uint8
	sum := 0
	largest := 0
	for i, v := range w {
		out[i] = uint8(v / total * 255)
		sum += int(out[i])
		if v > w[largest] {
			largest = i
		}
	}
	out[largest] += uint8(255 - sum)
	return out
}
