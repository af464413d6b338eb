package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test terrain defaults
	if cfg.Terrain.Width != 128 {
		t.Errorf("expected terrain width 128, got %d", cfg.Terrain.Width)
	}
	if cfg.Terrain.Height != 128 {
		t.Errorf("expected terrain height 128, got %d", cfg.Terrain.Height)
	}
	if cfg.Terrain.Scale != 1.0 {
		t.Errorf("expected cell scale 1.0, got %f", cfg.Terrain.Scale)
	}
	if cfg.Terrain.HeightScale != 24.0 {
		t.Errorf("expected height scale 24.0, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.Heightmap != "" {
		t.Errorf("expected empty heightmap path, got %s", cfg.Terrain.Heightmap)
	}

	// Test mesh defaults
	if cfg.Mesh.UVTileSize != 4.0 {
		t.Errorf("expected uv tile size 4.0, got %f", cfg.Mesh.UVTileSize)
	}
	if cfg.Mesh.NormalMethod != "area_weighted" {
		t.Errorf("expected normal method 'area_weighted', got %s", cfg.Mesh.NormalMethod)
	}

	// Test viewer defaults
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Viewer.Width)
	}
	if cfg.Viewer.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Viewer.Height)
	}
	if cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Viewer.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
terrain:
  heightmap: "maps/island.png"
  width: 256
  height: 256
  scale: 2.0
  height_scale: 48.0
  seed: 77

mesh:
  uv_tile_size: 8.0
  normal_method: "sobel"

viewer:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

logging:
  level: "debug"
  log_file: "ground.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Terrain.Heightmap != "maps/island.png" {
		t.Errorf("expected heightmap 'maps/island.png', got %s", cfg.Terrain.Heightmap)
	}
	if cfg.Terrain.Width != 256 {
		t.Errorf("expected terrain width 256, got %d", cfg.Terrain.Width)
	}
	if cfg.Terrain.Scale != 2.0 {
		t.Errorf("expected cell scale 2.0, got %f", cfg.Terrain.Scale)
	}
	if cfg.Terrain.HeightScale != 48.0 {
		t.Errorf("expected height scale 48.0, got %f", cfg.Terrain.HeightScale)
	}
	if cfg.Terrain.Seed != 77 {
		t.Errorf("expected seed 77, got %d", cfg.Terrain.Seed)
	}

	if cfg.Mesh.UVTileSize != 8.0 {
		t.Errorf("expected uv tile size 8.0, got %f", cfg.Mesh.UVTileSize)
	}
	if cfg.Mesh.NormalMethod != "sobel" {
		t.Errorf("expected normal method 'sobel', got %s", cfg.Mesh.NormalMethod)
	}

	if cfg.Viewer.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Viewer.Width)
	}
	if !cfg.Viewer.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "ground.log" {
		t.Errorf("expected log file 'ground.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Only override one section; the rest keeps defaults.
	yamlContent := `
mesh:
  normal_method: "sobel"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Mesh.NormalMethod != "sobel" {
		t.Errorf("expected normal method 'sobel', got %s", cfg.Mesh.NormalMethod)
	}
	if cfg.Terrain.Width != 128 {
		t.Errorf("expected default terrain width 128, got %d", cfg.Terrain.Width)
	}
	if cfg.Viewer.Width != 1280 {
		t.Errorf("expected default viewer width 1280, got %d", cfg.Viewer.Width)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
terrain:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Terrain.Seed = 9001
	cfg.Mesh.NormalMethod = "sobel"
	cfg.Viewer.Width = 800

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}

	if loaded.Terrain.Seed != 9001 {
		t.Errorf("expected seed 9001 after reload, got %d", loaded.Terrain.Seed)
	}
	if loaded.Mesh.NormalMethod != "sobel" {
		t.Errorf("expected normal method 'sobel' after reload, got %s", loaded.Mesh.NormalMethod)
	}
	if loaded.Viewer.Width != 800 {
		t.Errorf("expected width 800 after reload, got %d", loaded.Viewer.Width)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config present anywhere local.
	if path := findConfigFile(); path == "./config.yaml" {
		t.Error("found local config that does not exist")
	}

	if err := os.WriteFile("config.yaml", []byte("viewer:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if path := findConfigFile(); path != "./config.yaml" {
		t.Errorf("expected to find ./config.yaml, got %q", path)
	}
}
