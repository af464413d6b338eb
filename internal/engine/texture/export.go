package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"github.com/Faultbox/groundmesh/internal/engine/splat"
	"github.com/Faultbox/groundmesh/pkg/ground"
)

// ExportSplatWebP writes a packed splat image to disk as lossless WebP,
// creating parent directories as needed. Useful for inspecting blend
// weights outside the engine.
func ExportSplatWebP(img *splat.Image, path string) error {
	nrgba := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	copy(nrgba.Pix, img.Pixels)
	return writeWebP(nrgba, path)
}

// ExportHeightPreviewWebP writes a grayscale preview of the heightmap,
// normalized so the full height range spans black to white.
func ExportHeightPreviewWebP(hm *ground.HeightMap, path string) error {
	min, max := hm.Get(0, 0), hm.Get(0, 0)
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
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, hm.Width(), hm.Height()))
	for z := 0; z < hm.Height(); z++ {
		for x := 0; x < hm.Width(); x++ {
			img.SetGray(x, z, color.Gray{Y: uint8((hm.Get(x, z) - min) / span * 255)})
		}
	}
	return writeWebP(img, path)
}

func writeWebP(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("texture: mkdir %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("texture: WebP encode %s: %w", path, err)
	}
	return nil
}
