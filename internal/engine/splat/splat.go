// Package splat converts texture-weight maps into GPU-uploadable RGBA
// images and keeps them in sync with their source data.
package splat

import "github.com/Faultbox/groundmesh/pkg/ground"

// WrapMode declares how a sampler addresses coordinates outside [0,1].
type WrapMode int

const (
	// WrapRepeat tiles the texture, so adjacent terrain patches sample
	// seamlessly under world-space UVs.
	WrapRepeat WrapMode = iota
	// WrapClampToEdge extends the border pixel.
	WrapClampToEdge
)

// Format identifies the pixel layout of an Image.
type Format int

// FormatRGBA8Unorm is 8-bit unsigned normalized RGBA, four bytes per pixel.
const FormatRGBA8Unorm Format = iota

// Image is a CPU-side texture ready for GPU upload: tightly packed pixel
// bytes plus the sampling state the uploader must apply.
type Image struct {
	Width  int
	Height int
	Pixels []byte
	Format Format
	WrapS  WrapMode
	WrapT  WrapMode
}

// Pack flattens a weight map into a tightly packed RGBA8 byte buffer of
// length width*height*4. Byte 4*(z*width+x)+c equals channel c of the pixel
// at (x,z); channel order R,G,B,A maps directly to blend layers 0-3.
// No compression, mipmapping, or color-space conversion is applied.
func Pack(wm *ground.WeightMap) []byte {
	raw := make([]byte, 0, len(wm.Data)*4)
	for _, pixel := range wm.Data {
		raw = append(raw, pixel[0], pixel[1], pixel[2], pixel[3])
	}
	return raw
}

// NewImage packs a weight map into a tiling RGBA8 image.
// Repeat addressing on both axes keeps the splatmap seamless when sampled
// with world-space UVs across terrain patch borders.
func NewImage(wm *ground.WeightMap) *Image {
	return &Image{
		Width:  wm.Width,
		Height: wm.Height,
		Pixels: Pack(wm),
		Format: FormatRGBA8Unorm,
		WrapS:  WrapRepeat,
		WrapT:  WrapRepeat,
	}
}
