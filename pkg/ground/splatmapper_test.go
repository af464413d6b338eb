package ground

import "testing"

func TestSplatWeightsSumTo255(t *testing.T) {
	hm := NewHeightMap(16, 16, 1.0)
	DefaultFbmNoise().Generate(hm)

	wm := DefaultSplatMapper().Generate(hm)
	for i, pixel := range wm.Data {
		sum := int(pixel[0]) + int(pixel[1]) + int(pixel[2]) + int(pixel[3])
		if sum != 255 {
			t.Fatalf("pixel %d weights sum to %d, want 255", i, sum)
		}
	}
}

func TestSplatFlatMapIsLowLayer(t *testing.T) {
	hm := NewHeightMap(8, 8, 1.0)
	wm := DefaultSplatMapper().Generate(hm)

	for i, pixel := range wm.Data {
		if pixel[0] != 255 {
			t.Fatalf("flat terrain pixel %d = %v, want full low-layer weight", i, pixel)
		}
	}
}

func TestSplatSteepSlopeIsRock(t *testing.T) {
	// A cliff rising 10 units per cell is far past SlopeEnd.
	hm := NewHeightMap(8, 8, 1.0)
	for z := 0; z < 8; z++ {
		for x := 0; x < 8; x++ {
			hm.Set(x, z, float32(x)*10)
		}
	}

	wm := DefaultSplatMapper().Generate(hm)
	center := wm.Data[4*8+4]
	if center[2] != 255 {
		t.Errorf("steep interior pixel = %v, want full rock weight", center)
	}
}

func TestSplatHighAltitudeIsSnow(t *testing.T) {
	// Two flat plateaus: low half and high half. The high plateau interior
	// is flat (no slope) and far above HighStart.
	hm := NewHeightMap(16, 16, 1.0)
	for z := 0; z < 16; z++ {
		for x := 8; x < 16; x++ {
			hm.Set(x, z, 100)
		}
	}

	wm := DefaultSplatMapper().Generate(hm)
	pixel := wm.Data[8*16+13] // interior of the high plateau
	if pixel[3] != 255 {
		t.Errorf("high plateau pixel = %v, want full snow weight", pixel)
	}
}

func TestSplatMapMatchesGridSize(t *testing.T) {
	hm := NewHeightMap(10, 6, 1.0)
	wm := DefaultSplatMapper().Generate(hm)
	if wm.Width != 10 || wm.Height != 6 {
		t.Errorf("weight map %dx%d, want 10x6", wm.Width, wm.Height)
	}
	if len(wm.Data) != 60 {
		t.Errorf("weight map data length %d, want 60", len(wm.Data))
	}
}
