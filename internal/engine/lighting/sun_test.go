package lighting

import (
	gomath "math"
	"testing"
)

func TestSunDirectionIsNormalized(t *testing.T) {
	suns := []Sun{
		DefaultSun(),
		{AzimuthDeg: 0, ElevationDeg: 0},
		{AzimuthDeg: 270, ElevationDeg: 85},
	}
	for _, s := range suns {
		d := s.Direction()
		length := gomath.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if gomath.Abs(length-1.0) > 1e-5 {
			t.Errorf("direction for az=%g el=%g has length %g, want 1",
				s.AzimuthDeg, s.ElevationDeg, length)
		}
	}
}

func TestSunAtZenithPointsUp(t *testing.T) {
	s := Sun{AzimuthDeg: 123, ElevationDeg: 90}
	d := s.Direction()
	if d[1] < 0.9999 {
		t.Errorf("zenith sun Y = %g, want ~1", d[1])
	}
}

func TestSunOnHorizonIsFlat(t *testing.T) {
	s := Sun{AzimuthDeg: 0, ElevationDeg: 0}
	d := s.Direction()
	if gomath.Abs(float64(d[1])) > 1e-6 {
		t.Errorf("horizon sun Y = %g, want 0", d[1])
	}
	if d[2] < 0.9999 {
		t.Errorf("azimuth 0 should point down +Z, got %v", d)
	}
}

func TestSunRotateWraps(t *testing.T) {
	s := Sun{AzimuthDeg: 350}
	s.Rotate(20)
	if s.AzimuthDeg != 10 {
		t.Errorf("azimuth after wrap = %g, want 10", s.AzimuthDeg)
	}
	s.Rotate(-30)
	if s.AzimuthDeg != 340 {
		t.Errorf("azimuth after negative wrap = %g, want 340", s.AzimuthDeg)
	}
}
