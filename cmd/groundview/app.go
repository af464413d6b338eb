package main

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/groundmesh/internal/config"
	"github.com/Faultbox/groundmesh/internal/engine/camera"
	"github.com/Faultbox/groundmesh/internal/engine/debug"
	"github.com/Faultbox/groundmesh/internal/engine/input"
	"github.com/Faultbox/groundmesh/internal/engine/lighting"
	"github.com/Faultbox/groundmesh/internal/engine/picking"
	"github.com/Faultbox/groundmesh/internal/engine/scene"
	"github.com/Faultbox/groundmesh/internal/engine/splat"
	"github.com/Faultbox/groundmesh/internal/engine/terrain"
	"github.com/Faultbox/groundmesh/internal/engine/texture"
	"github.com/Faultbox/groundmesh/internal/engine/window"
	"github.com/Faultbox/groundmesh/internal/logger"
	"github.com/Faultbox/groundmesh/pkg/ground"
	"github.com/Faultbox/groundmesh/pkg/math"
)

// paintRadius is the brush size in grid cells for click painting.
const paintRadius = 4.0

// app owns the viewer's window, GPU resources, and terrain state.
type app struct {
	cfg   *config.Config
	win   *window.Window
	cam   *camera.OrbitCamera
	in    *input.Input
	sun   lighting.Sun
	shots *debug.ScreenshotCapture

	renderer *scene.GroundRenderer

	heightmap *ground.HeightMap
	method    terrain.NormalMethod
	settings  *splat.MaterialSettings
	splatImg  *splat.Image

	// viewProj of the last rendered frame, for unprojecting clicks.
	lastViewProj math.Mat4
	paintLayer   int
}

func newApp(cfg *config.Config) (*app, error) {
	win, err := window.New(window.Config{
		Title:      "groundview",
		Width:      cfg.Viewer.Width,
		Height:     cfg.Viewer.Height,
		Fullscreen: cfg.Viewer.Fullscreen,
		VSync:      cfg.Viewer.VSync,
	})
	if err != nil {
		return nil, err
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.45, 0.65, 0.85, 1.0)

	a := &app{
		cfg:        cfg,
		win:        win,
		cam:        camera.NewOrbitCamera(),
		in:         input.New(),
		sun:        lighting.DefaultSun(),
		shots:      debug.NewScreenshotCapture("screenshots", "groundview"),
		method:     terrain.ParseNormalMethod(cfg.Mesh.NormalMethod),
		paintLayer: 2, // rock
	}

	renderer, err := scene.NewGroundRenderer()
	if err != nil {
		win.Close()
		return nil, err
	}
	a.renderer = renderer

	if err := a.loadTerrain(); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// loadTerrain builds the heightmap (from file or noise), the mesh, and the
// initial splat state.
func (a *app) loadTerrain() error {
	tc := a.cfg.Terrain

	if tc.Heightmap != "" {
		hm, err := texture.LoadHeightMap(tc.Heightmap, tc.Scale, tc.HeightScale)
		if err != nil {
			return err
		}
		a.heightmap = hm
		logger.Info("loaded heightmap",
			zap.String("path", tc.Heightmap),
			zap.Int("width", hm.Width()),
			zap.Int("height", hm.Height()),
		)
	} else {
		hm := ground.NewHeightMap(tc.Width, tc.Height, tc.Scale)
		noise := ground.DefaultFbmNoise()
		noise.Seed = tc.Seed
		noise.Amplitude = tc.HeightScale
		noise.Generate(hm)
		a.heightmap = hm
		logger.Info("generated terrain",
			zap.Int("width", tc.Width),
			zap.Int("height", tc.Height),
			zap.Int64("seed", tc.Seed),
		)
	}

	a.rebuildMesh()

	wm := ground.DefaultSplatMapper().Generate(a.heightmap)
	a.settings = splat.NewMaterialSettings(wm)
	a.splatImg = splat.NewImage(wm)
	a.renderer.UploadSplat(a.splatImg)

	a.cam.FitToBounds(a.renderer.MinBounds, a.renderer.MaxBounds)
	return nil
}

func (a *app) rebuildMesh() {
	mesh := terrain.NewBuilder().
		WithUVTileSize(a.cfg.Mesh.UVTileSize).
		WithNormalMethod(a.method).
		Build(a.heightmap)
	a.renderer.LoadMesh(mesh, a.heightmap.WorldWidth(), a.heightmap.WorldDepth())

	logger.Info("mesh built",
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("triangles", len(mesh.Indices)/3),
		zap.String("normals", a.method.String()),
	)
}

// Run drives the event and render loop until the window closes.
func (a *app) Run() error {
	for {
		if quit := a.in.Update(); quit {
			return nil
		}

		for _, ev := range a.in.Events() {
			switch ev.Type {
			case input.EventKeyDown:
				switch ev.Key {
				case sdl.SCANCODE_ESCAPE:
					return nil
				case sdl.SCANCODE_N:
					a.toggleNormals()
				case sdl.SCANCODE_R:
					a.scrambleSplat()
				case sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4:
					a.paintLayer = int(ev.Key - sdl.SCANCODE_1)
				case sdl.SCANCODE_LEFT:
					a.sun.Rotate(-15)
				case sdl.SCANCODE_RIGHT:
					a.sun.Rotate(15)
				case sdl.SCANCODE_F12:
					a.captureScreenshot()
				}

			case input.EventMouseDown:
				if ev.Button == sdl.BUTTON_LEFT {
					a.paintAt(ev.MouseX, ev.MouseY)
				}

			case input.EventMouseMove:
				if a.in.IsButtonHeld(sdl.BUTTON_RIGHT) {
					a.cam.HandleDrag(float32(ev.RelX), float32(ev.RelY))
				} else if a.in.IsButtonHeld(sdl.BUTTON_LEFT) {
					a.paintAt(ev.MouseX, ev.MouseY)
				}

			case input.EventMouseWheel:
				a.cam.HandleZoom(float32(ev.Scroll))
			}
		}

		// One sync pass per frame: re-packs only when the weight map
		// was marked dirty since the last frame.
		if splat.Sync(a.settings, a.splatImg) {
			a.renderer.UploadSplat(a.splatImg)
		}

		a.render()
		a.win.SwapBuffers()
	}
}

// toggleNormals switches between the two normal strategies and rebuilds.
func (a *app) toggleNormals() {
	if a.method == terrain.NormalAreaWeighted {
		a.method = terrain.NormalSobel
	} else {
		a.method = terrain.NormalAreaWeighted
	}
	a.rebuildMesh()
}

// scrambleSplat perturbs the splat thresholds and regenerates the weight
// map, exercising the dirty-flag sync path.
func (a *app) scrambleSplat() {
	mapper := ground.DefaultSplatMapper()
	mapper.LowEnd = 0.15 + rand.Float32()*0.3
	mapper.HighStart = 0.6 + rand.Float32()*0.3

	a.settings.WeightMap = mapper.Generate(a.heightmap)
	a.settings.MarkDirty()
	logger.Debug("splat weights regenerated")
}

// paintAt casts a ray through the cursor and brushes the active layer onto
// the weight map where it meets the terrain.
func (a *app) paintAt(screenX, screenY int) {
	width, height := a.win.GetSize()
	ray := picking.ScreenToRay(
		float32(screenX), float32(screenY),
		float32(width), float32(height),
		a.lastViewProj.Inverse(),
	)

	hit, ok := ray.IntersectHeightMap(a.heightmap)
	if !ok {
		return
	}

	a.settings.WeightMap.PaintCircle(hit.CellX, hit.CellZ, paintRadius, a.paintLayer)
	a.settings.MarkDirty()
	logger.Debug("painted splat layer",
		zap.Int("layer", a.paintLayer),
		zap.Int("cellX", hit.CellX),
		zap.Int("cellZ", hit.CellZ),
	)
}

func (a *app) captureScreenshot() {
	width, height := a.win.GetSize()
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	path, err := a.shots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func (a *app) render() {
	width, height := a.win.GetSize()
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(width) / float32(height)
	proj := math.Perspective(0.785398, aspect, 0.1, 10000.0) // 45 degrees FOV
	a.lastViewProj = proj.Mul(a.cam.ViewMatrix())

	sunDir := a.sun.Direction()
	lightDir := [3]float32{-sunDir[0], -sunDir[1], -sunDir[2]}
	ambient := [3]float32{a.sun.Ambient, a.sun.Ambient, a.sun.Ambient + 0.03}
	a.renderer.Render(a.lastViewProj, lightDir, ambient)
}

// Close releases all resources.
func (a *app) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.win != nil {
		a.win.Close()
	}
}
