package splat

import "github.com/Faultbox/groundmesh/pkg/ground"

// MaterialSettings owns the weight map for one terrain surface and tracks
// whether the packed GPU image is stale. Mutate the weight map, call
// MarkDirty, and the next Sync pass re-packs the image.
//
// The dirty flag is single-writer state: mutate the weight map and run Sync
// from one coordinating update phase (typically once per frame). Concurrent
// mutation and syncing from multiple goroutines is not supported.
type MaterialSettings struct {
	WeightMap *ground.WeightMap
	dirty     bool
}

// NewMaterialSettings wraps a weight map. The settings start dirty so the
// first Sync call uploads the initial image.
func NewMaterialSettings(wm *ground.WeightMap) *MaterialSettings {
	return &MaterialSettings{WeightMap: wm, dirty: true}
}

// MarkDirty flags the weight map as changed so the next Sync re-packs it.
func (s *MaterialSettings) MarkDirty() {
	s.dirty = true
}

// Dirty reports whether a re-pack is pending.
func (s *MaterialSettings) Dirty() bool {
	return s.dirty
}

// Sync re-packs the weight map into img when the settings are dirty.
// It reports whether img was rewritten, so callers know to re-upload the
// texture to the GPU.
//
// Cheap to call every frame: when the flag is clear it returns immediately.
// When img is nil the destination resource is not resolved yet; Sync leaves
// the dirty flag set and the re-pack happens on a later call once the
// resource exists.
func Sync(s *MaterialSettings, img *Image) bool {
	if !s.dirty {
		return false
	}
	if img == nil {
		return false
	}

	wm := s.WeightMap
	if img.Width != wm.Width || img.Height != wm.Height {
		img.Width = wm.Width
		img.Height = wm.Height
	}
	img.Pixels = Pack(wm)

	s.dirty = false
	return true
}
