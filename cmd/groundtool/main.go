// groundtool is a CLI utility for building terrain meshes and splat
// textures from heightmap data.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/groundmesh/internal/engine/collider"
	"github.com/Faultbox/groundmesh/internal/engine/splat"
	"github.com/Faultbox/groundmesh/internal/engine/terrain"
	"github.com/Faultbox/groundmesh/internal/engine/texture"
	"github.com/Faultbox/groundmesh/pkg/ground"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "mesh":
		cmdMesh(args)
	case "splat":
		cmdSplat(args)
	case "collider":
		cmdCollider(args)
	case "preview":
		cmdPreview(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`groundtool - terrain mesh and splat texture utility

Usage:
  groundtool <command> [options]

Commands:
  info <heightmap>               Show heightmap information
  mesh [options] [heightmap]     Build a mesh and print statistics
  splat [options] <out.webp>     Derive a splat texture and export it
  collider [options] [heightmap] Build heightfield collider data
  preview <heightmap> <out.webp> Export a grayscale height preview

Options:
  -scale n         World units per grid cell (default 1.0)
  -height-scale n  World height of a full-range sample (default 24.0)
  -uv-tile n       World size of one UV tile (default 4.0)
  -normals m       Normal method: area_weighted or sobel
  -size n          Grid size for generated terrain (default 128)
  -seed n          Noise seed for generated terrain (default 1)

When no heightmap file is given, terrain is generated from fBm noise.

Examples:
  groundtool info terrain.png
  groundtool mesh -uv-tile 8 terrain.png
  groundtool mesh -size 256 -seed 42 -normals sobel
  groundtool splat -size 128 splat.webp`)
}

// fieldOptions are the flags shared by the mesh/splat/collider commands.
type fieldOptions struct {
	scale       float64
	heightScale float64
	uvTile      float64
	normals     string
	size        int
	seed        int64
}

func parseFieldOptions(name string, args []string) (fieldOptions, []string) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	opts := fieldOptions{}
	fs.Float64Var(&opts.scale, "scale", 1.0, "world units per grid cell")
	fs.Float64Var(&opts.heightScale, "height-scale", 24.0, "world height of a full-range sample")
	fs.Float64Var(&opts.uvTile, "uv-tile", 4.0, "world size of one UV tile")
	fs.StringVar(&opts.normals, "normals", "area_weighted", "normal method")
	fs.IntVar(&opts.size, "size", 128, "grid size for generated terrain")
	fs.Int64Var(&opts.seed, "seed", 1, "noise seed for generated terrain")
	fs.Parse(args)
	return opts, fs.Args()
}

// loadField loads the heightmap named by the first positional argument, or
// generates one from noise when no file is given.
func loadField(opts fieldOptions, args []string) *ground.HeightMap {
	if len(args) > 0 {
		hm, err := texture.LoadHeightMap(args[0], float32(opts.scale), float32(opts.heightScale))
		if err != nil {
			fatal(err)
		}
		return hm
	}

	hm := ground.NewHeightMap(opts.size, opts.size, float32(opts.scale))
	noise := ground.DefaultFbmNoise()
	noise.Seed = opts.seed
	noise.Amplitude = float32(opts.heightScale)
	noise.Generate(hm)
	return hm
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: groundtool info <heightmap>")
		os.Exit(1)
	}

	hm, err := texture.LoadHeightMap(args[0], 1.0, 1.0)
	if err != nil {
		fatal(err)
	}

	min, max := hm.Get(0, 0), hm.Get(0, 0)
	for z := 0; z < hm.Height(); z++ {
		for x := 0; x < hm.Width(); x++ {
			v := hm.Get(x, z)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	fmt.Printf("Grid:         %dx%d\n", hm.Width(), hm.Height())
	fmt.Printf("World extent: %.1f x %.1f\n", hm.WorldWidth(), hm.WorldDepth())
	fmt.Printf("Height range: %.3f .. %.3f (normalized)\n", min, max)
}

func cmdMesh(args []string) {
	opts, rest := parseFieldOptions("mesh", args)
	hm := loadField(opts, rest)

	mesh := terrain.NewBuilder().
		WithUVTileSize(float32(opts.uvTile)).
		WithNormalMethod(terrain.ParseNormalMethod(opts.normals)).
		Build(hm)

	fmt.Printf("Vertices:  %d\n", len(mesh.Positions))
	fmt.Printf("Triangles: %d\n", len(mesh.Indices)/3)
	fmt.Printf("Normals:   %s\n", terrain.ParseNormalMethod(opts.normals))
	fmt.Printf("Bounds:    (%.1f, %.1f, %.1f) .. (%.1f, %.1f, %.1f)\n",
		mesh.Bounds.Min[0], mesh.Bounds.Min[1], mesh.Bounds.Min[2],
		mesh.Bounds.Max[0], mesh.Bounds.Max[1], mesh.Bounds.Max[2])
}

func cmdSplat(args []string) {
	opts, rest := parseFieldOptions("splat", args)
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: groundtool splat [options] [heightmap] <out.webp>")
		os.Exit(1)
	}

	outPath := rest[len(rest)-1]
	hm := loadField(opts, rest[:len(rest)-1])

	wm := ground.DefaultSplatMapper().Generate(hm)
	img := splat.NewImage(wm)
	if err := texture.ExportSplatWebP(img, outPath); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %dx%d splat texture (%d bytes) to %s\n",
		img.Width, img.Height, len(img.Pixels), outPath)
}

func cmdCollider(args []string) {
	opts, rest := parseFieldOptions("collider", args)
	hm := loadField(opts, rest)

	shape := collider.BuildHeightfield(hm)
	fmt.Printf("Heightfield: %d columns x %d rows\n", len(shape.Heights), len(shape.Heights[0]))
	fmt.Printf("Scale:       (%.1f, %.1f, %.1f)\n", shape.Scale[0], shape.Scale[1], shape.Scale[2])
}

func cmdPreview(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: groundtool preview <heightmap> <out.webp>")
		os.Exit(1)
	}

	hm, err := texture.LoadHeightMap(args[0], 1.0, 1.0)
	if err != nil {
		fatal(err)
	}
	if err := texture.ExportHeightPreviewWebP(hm, args[1]); err != nil {
		fatal(err)
	}

	fmt.Printf("Wrote %dx%d preview to %s\n", hm.Width(), hm.Height(), args[1])
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
