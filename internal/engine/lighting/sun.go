// Package lighting provides the directional sun light used to shade terrain.
package lighting

import "math"

// Sun is a directional light described by compass angles.
// Azimuth is rotation around the Y axis in degrees (0-360), elevation is
// the angle above the horizon in degrees (0-90).
type Sun struct {
	AzimuthDeg   float32
	ElevationDeg float32
	Ambient      float32
}

// DefaultSun returns a mid-morning sun that gives terrain relief good contrast.
func DefaultSun() Sun {
	return Sun{
		AzimuthDeg:   135,
		ElevationDeg: 50,
		Ambient:      0.25,
	}
}

// Direction returns the normalized direction vector pointing towards the sun.
func (s Sun) Direction() [3]float32 {
	azRad := float64(s.AzimuthDeg) * math.Pi / 180.0
	elRad := float64(s.ElevationDeg) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}

// Rotate moves the sun around the Y axis by the given degrees, wrapping at 360.
func (s *Sun) Rotate(degrees float32) {
	s.AzimuthDeg += degrees
	for s.AzimuthDeg >= 360 {
		s.AzimuthDeg -= 360
	}
	for s.AzimuthDeg < 0 {
		s.AzimuthDeg += 360
	}
}
