// Package config handles terrain tool configuration loading and management.
package config

// Config holds all terrain generation and viewer settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig describes the source height field.
type TerrainConfig struct {
	// Heightmap is an optional grayscale image path (PNG or TGA).
	// When empty, terrain is generated from noise instead.
	Heightmap string `yaml:"heightmap"`

	Width       int     `yaml:"width"`        // grid cells along X (generated terrain)
	Height      int     `yaml:"height"`       // grid cells along Z (generated terrain)
	Scale       float32 `yaml:"scale"`        // world units per grid cell
	HeightScale float32 `yaml:"height_scale"` // world height of a full-range sample
	Seed        int64   `yaml:"seed"`         // noise seed for generated terrain
}

// MeshConfig holds mesh generation settings.
type MeshConfig struct {
	UVTileSize   float32 `yaml:"uv_tile_size"`
	NormalMethod string  `yaml:"normal_method"` // "area_weighted" or "sobel"
}

// ViewerConfig holds display settings for groundview.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Width:       128,
			Height:      128,
			Scale:       1.0,
			HeightScale: 24.0,
			Seed:        1,
		},
		Mesh: MeshConfig{
			UVTileSize:   4.0,
			NormalMethod: "area_weighted",
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
