// Command img2stl converts a PNG or JPEG image into an extruded binary
// STL triangle mesh.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gomesh/raster2stl"
)

func main() {
	var in, out string
	var threshold uint
	var height, scale float64
	var invert, verbose bool

	flag.StringVar(&in, "i", "", "Input image file path (PNG or JPEG)")
	flag.StringVar(&out, "o", "", "Output STL file path")
	flag.UintVar(&threshold, "threshold", 128, "Luminance threshold (0-255)")
	flag.Float64Var(&height, "height", 10.0, "Extrusion height")
	flag.Float64Var(&scale, "scale", 0.05, "Uniform output scale")
	flag.BoolVar(&invert, "invert", false, "Treat pixels above threshold as foreground")
	flag.BoolVar(&verbose, "v", false, "Log pipeline progress to stderr")
	var debugGeoJSON string
	flag.StringVar(&debugGeoJSON, "debug-geojson", "", "Also write nested-polygon geometry to this GeoJSON file")
	flag.Parse()

	if in == "" || out == "" {
		fmt.Fprintln(os.Stderr, "usage: img2stl -i input.png -o output.stl")
		os.Exit(1)
	}
	if threshold > 255 {
		fmt.Fprintln(os.Stderr, "threshold must be between 0 and 255")
		os.Exit(1)
	}

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	data, err := os.ReadFile(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2stl: read %s: %v\n", in, err)
		os.Exit(1)
	}

	cfg := raster2stl.NewConfig(
		raster2stl.WithThreshold(uint8(threshold)),
		raster2stl.WithHeight(height),
		raster2stl.WithScale(scale),
		raster2stl.WithInvert(invert),
		raster2stl.WithLogger(logger),
	)

	if debugGeoJSON != "" {
		geo, err := raster2stl.BuildGeometry(data, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "img2stl: %v\n", err)
			os.Exit(1)
		}
		b, err := raster2stl.DebugPolygonsGeoJSON(geo.Polygons)
		if err != nil {
			fmt.Fprintf(os.Stderr, "img2stl: geojson: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(debugGeoJSON, b, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "img2stl: write %s: %v\n", debugGeoJSON, err)
			os.Exit(1)
		}
	}

	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "img2stl: create %s: %v\n", out, err)
		os.Exit(1)
	}
	defer f.Close()

	if err := raster2stl.ConvertToSTL(f, data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "img2stl: %v\n", err)
		os.Exit(1)
	}
}
