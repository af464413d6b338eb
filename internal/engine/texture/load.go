// Package texture loads terrain field data from image files and exports
// previews of generated textures.
package texture

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/groundmesh/pkg/ground"
)

// LoadHeightMap reads a grayscale PNG or TGA file and converts it into a
// heightmap. Pixel luminance maps linearly to [0, heightScale]; 16-bit PNG
// sources keep their full precision. One pixel becomes one grid cell of
// size scale.
func LoadHeightMap(path string, scale, heightScale float32) (*ground.HeightMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return HeightMapFromImage(img, scale, heightScale), nil
}

// HeightMapFromImage converts a decoded image into a heightmap, one grid
// cell per pixel.
func HeightMapFromImage(img image.Image, scale, heightScale float32) *ground.HeightMap {
	bounds := img.Bounds()
	hm := ground.NewHeightMap(bounds.Dx(), bounds.Dy(), scale)

	for z := 0; z < bounds.Dy(); z++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+z).RGBA()
			// RGBA() returns 16-bit channels; average to luminance.
			lum := (r + g + b) / 3
			hm.Set(x, z, float32(lum)/65535.0*heightScale)
		}
	}
	return hm
}

// Resample scales an image to the target grid size with bilinear filtering.
// Used to fit arbitrary source images onto a fixed terrain grid before
// conversion.
func Resample(img image.Image, width, height int) image.Image {
	if b := img.Bounds(); b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
