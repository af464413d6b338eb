// Package ground provides terrain height and texture-weight field data types.
package ground

import "fmt"

// HeightMap is a dense 2D grid of elevation samples with uniform world-space
// spacing. Data is stored row-major: data[z*width+x].
type HeightMap struct {
	width  int
	height int
	scale  float32
	data   []float32
}

// NewHeightMap creates a zero-filled heightmap.
// Panics if either dimension is zero or the scale is not positive.
func NewHeightMap(width, height int, scale float32) *HeightMap {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("ground: heightmap dimensions must be >= 1 (got %dx%d)", width, height))
	}
	if scale <= 0 {
		panic(fmt.Sprintf("ground: heightmap scale must be positive (got %g)", scale))
	}
	return &HeightMap{
		width:  width,
		height: height,
		scale:  scale,
		data:   make([]float32, width*height),
	}
}

// Width returns the number of grid cells along X.
func (h *HeightMap) Width() int { return h.width }

// Height returns the number of grid cells along Z.
func (h *HeightMap) Height() int { return h.height }

// Scale returns the world-unit size of one grid cell.
func (h *HeightMap) Scale() float32 { return h.scale }

// WorldWidth returns the world-space extent along X.
func (h *HeightMap) WorldWidth() float32 { return float32(h.width) * h.scale }

// WorldDepth returns the world-space extent along Z.
func (h *HeightMap) WorldDepth() float32 { return float32(h.height) * h.scale }

// Get returns the height at grid coordinate (x, z).
// Panics on out-of-range coordinates; callers must stay in bounds.
func (h *HeightMap) Get(x, z int) float32 {
	h.checkBounds(x, z)
	return h.data[z*h.width+x]
}

// Set stores the height at grid coordinate (x, z).
// Panics on out-of-range coordinates.
func (h *HeightMap) Set(x, z int, value float32) {
	h.checkBounds(x, z)
	h.data[z*h.width+x] = value
}

func (h *HeightMap) checkBounds(x, z int) {
	if x < 0 || x >= h.width || z < 0 || z >= h.height {
		panic(fmt.Sprintf("ground: heightmap access (%d,%d) out of range %dx%d", x, z, h.width, h.height))
	}
}

// SampleWorld returns the bilinearly interpolated height at a world-space
// position. Positions outside the grid clamp to the border samples.
func (h *HeightMap) SampleWorld(wx, wz float32) float32 {
	fx := wx / h.scale
	fz := wz / h.scale

	if fx < 0 {
		fx = 0
	}
	if fz < 0 {
		fz = 0
	}
	maxX := float32(h.width - 1)
	maxZ := float32(h.height - 1)
	if fx > maxX {
		fx = maxX
	}
	if fz > maxZ {
		fz = maxZ
	}

	x0 := int(fx)
	z0 := int(fz)
	x1 := x0 + 1
	z1 := z0 + 1
	if x1 > h.width-1 {
		x1 = h.width - 1
	}
	if z1 > h.height-1 {
		z1 = h.height - 1
	}
	tx := fx - float32(x0)
	tz := fz - float32(z0)

	top := h.data[z0*h.width+x0]*(1-tx) + h.data[z0*h.width+x1]*tx
	bot := h.data[z1*h.width+x0]*(1-tx) + h.data[z1*h.width+x1]*tx
	return top*(1-tz) + bot*tz
}

// Normalize rescales all heights into [0, 1].
// A perfectly flat map normalizes to all zeros.
func (h *HeightMap) Normalize() {
	min, max := h.data[0], h.data[0]
	for _, v := range h.data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	span := max - min
	if span == 0 {
		for i := range h.data {
			h.data[i] = 0
		}
		return
	}
	for i := range h.data {
		h.data[i] = (h.data[i] - min) / span
	}
}
