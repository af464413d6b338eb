package ground

import "math"

// FbmNoise fills a heightmap with deterministic multi-octave value noise.
// Identical parameters always produce identical output, so generated
// terrain is reproducible across runs and platforms.
type FbmNoise struct {
	Seed        int64
	Frequency   float64 // base frequency in cycles per grid cell
	Octaves     int
	Persistence float64 // amplitude falloff per octave
	Lacunarity  float64 // frequency growth per octave
	Amplitude   float32 // world-space height of the full noise range
}

// DefaultFbmNoise returns generator settings that produce gently rolling
// terrain at any grid size.
func DefaultFbmNoise() FbmNoise {
	return FbmNoise{
		Seed:        1,
		Frequency:   0.04,
		Octaves:     5,
		Persistence: 0.5,
		Lacunarity:  2.0,
		Amplitude:   12.0,
	}
}

// Generate overwrites the heightmap contents with fBm noise.
func (n FbmNoise) Generate(hm *HeightMap) {
	octaves := n.Octaves
	if octaves < 1 {
		octaves = 1
	}
	for z := 0; z < hm.Height(); z++ {
		for x := 0; x < hm.Width(); x++ {
			v := octaveNoise2D(float64(x)*n.Frequency, float64(z)*n.Frequency,
				n.Seed, octaves, n.Persistence, n.Lacunarity)
			hm.Set(x, z, float32(v)*n.Amplitude)
		}
	}
}

// hash2 is a SplitMix64-style integer hash, stable across runs for the same
// lattice coordinates and seed.
func hash2(x, z, seed int64) uint64 {
	v := uint64(x) + (uint64(z) << 1) + uint64(seed)*0x9E3779B97F4A7C15
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	return v ^ (v >> 31)
}

func latticeValue(x, z, seed int64) float64 {
	return float64(hash2(x, z, seed)&0xFFFFFFFF) / float64(0xFFFFFFFF)
}

// fade is the smoothstep-like curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func valueNoise2D(x, z float64, seed int64) float64 {
	x0 := math.Floor(x)
	z0 := math.Floor(z)

	fx := fade(x - x0)
	fz := fade(z - z0)

	v00 := latticeValue(int64(x0), int64(z0), seed)
	v10 := latticeValue(int64(x0)+1, int64(z0), seed)
	v01 := latticeValue(int64(x0), int64(z0)+1, seed)
	v11 := latticeValue(int64(x0)+1, int64(z0)+1, seed)

	return lerp(lerp(v00, v10, fx), lerp(v01, v11, fx), fz)
}

func octaveNoise2D(x, z float64, seed int64, octaves int, persistence, lacunarity float64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += valueNoise2D(x*frequency, z*frequency, seed+int64(i)) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	return total / maxValue
}
