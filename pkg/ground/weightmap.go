package ground

import (
	"fmt"
	"math"
)

// WeightMap is a dense 2D grid of 4-channel texture blend weights, one pixel
// per grid cell. Channels R,G,B,A correspond to blend layers 0-3.
// Data is stored row-major like HeightMap: Data[z*Width+x].
type WeightMap struct {
	Width  int
	Height int
	Data   [][4]uint8
}

// NewWeightMap creates a zero-filled weight map.
// Panics if either dimension is zero.
func NewWeightMap(width, height int) *WeightMap {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("ground: weightmap dimensions must be >= 1 (got %dx%d)", width, height))
	}
	return &WeightMap{
		Width:  width,
		Height: height,
		Data:   make([][4]uint8, width*height),
	}
}

// PaintCircle pushes one channel towards full weight inside a circular brush
// centered on cell (cx, cz), with linear falloff towards the brush edge.
// The other channels shrink proportionally so each pixel keeps summing to 255.
// The radius is measured in cells. Channels outside 0-3 are ignored.
func (w *WeightMap) PaintCircle(cx, cz int, radius float32, channel int) {
	if channel < 0 || channel > 3 || radius <= 0 {
		return
	}

	r := int(radius) + 1
	for z := cz - r; z <= cz+r; z++ {
		if z < 0 || z >= w.Height {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= w.Width {
				continue
			}
			dx := float32(x - cx)
			dz := float32(z - cz)
			dist := float32(math.Sqrt(float64(dx*dx + dz*dz)))
			if dist > radius {
				continue
			}
			strength := 1 - dist/radius

			px := &w.Data[z*w.Width+x]
			old := float32(px[channel])
			painted := old + strength*(255-old)

			rest := float32(0)
			for c := 0; c < 4; c++ {
				if c != channel {
					rest += float32(px[c])
				}
			}

			var out [4]uint8
			out[channel] = uint8(painted + 0.5)
			if rest > 0 {
				shrink := (255 - painted) / rest
				for c := 0; c < 4; c++ {
					if c != channel {
						out[c] = uint8(float32(px[c])*shrink + 0.5)
					}
				}
			}

			// Punt rounding drift onto the painted channel.
			sum := int(out[0]) + int(out[1]) + int(out[2]) + int(out[3])
			out[channel] = uint8(int(out[channel]) + 255 - sum)

			*px = out
		}
	}
}
