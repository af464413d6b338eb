package terrain

import (
	"testing"

	"github.com/Faultbox/groundmesh/pkg/ground"
)

func benchHeightMap() *ground.HeightMap {
	hm := ground.NewHeightMap(128, 128, 1.0)
	noise := ground.DefaultFbmNoise()
	noise.Generate(hm)
	return hm
}

func BenchmarkBuildAreaWeighted(b *testing.B) {
	hm := benchHeightMap()
	builder := NewBuilder().WithUVTileSize(4.0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Build(hm)
	}
}

func BenchmarkBuildSobel(b *testing.B) {
	hm := benchHeightMap()
	builder := NewBuilder().WithUVTileSize(4.0).WithNormalMethod(NormalSobel)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = builder.Build(hm)
	}
}
