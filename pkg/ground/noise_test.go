package ground

import "testing"

func TestFbmNoiseDeterministic(t *testing.T) {
	gen := DefaultFbmNoise()

	a := NewHeightMap(32, 32, 1.0)
	b := NewHeightMap(32, 32, 1.0)
	gen.Generate(a)
	gen.Generate(b)

	for z := 0; z < 32; z++ {
		for x := 0; x < 32; x++ {
			if a.Get(x, z) != b.Get(x, z) {
				t.Fatalf("noise differs at (%d,%d) for identical parameters", x, z)
			}
		}
	}
}

func TestFbmNoiseSeedChangesOutput(t *testing.T) {
	a := NewHeightMap(32, 32, 1.0)
	b := NewHeightMap(32, 32, 1.0)

	genA := DefaultFbmNoise()
	genB := DefaultFbmNoise()
	genB.Seed = 999

	genA.Generate(a)
	genB.Generate(b)

	same := true
	for z := 0; z < 32 && same; z++ {
		for x := 0; x < 32; x++ {
			if a.Get(x, z) != b.Get(x, z) {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical terrain")
	}
}

func TestFbmNoiseStaysInAmplitude(t *testing.T) {
	gen := DefaultFbmNoise()
	gen.Amplitude = 10.0

	hm := NewHeightMap(64, 64, 1.0)
	gen.Generate(hm)

	for z := 0; z < 64; z++ {
		for x := 0; x < 64; x++ {
			v := hm.Get(x, z)
			if v < 0 || v > 10.0 {
				t.Fatalf("height %g at (%d,%d) outside [0, amplitude]", v, x, z)
			}
		}
	}
}
