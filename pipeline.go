// raster2stl - convert raster silhouettes into extruded STL meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster2stl

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
)

// Geometry holds the intermediate results of the pipeline's 2D stages,
// before triangulation and extrusion. [BuildGeometry] produces it;
// debugging tools can render it with the geojson package instead of
// running the rest of the pipeline.
type Geometry struct {
	Rings    []*Ring
	Polygons []PolygonWithHoles
}

// BuildGeometry decodes imageBytes and runs it through binarization,
// contour tracing, ring assembly, and containment nesting.
func BuildGeometry(imageBytes []byte, cfg Config) (*Geometry, error) {
	img, format, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	cfg.Logger.Debug("image decoded", "format", format, "bounds", img.Bounds())

	bin := Binarize(img, cfg)
	cfg.Logger.Debug("binarized", "width", bin.Width, "height", bin.Height)

	segments, err := Trace(bin)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("traced", "segments", len(segments))

	asm := NewAssembler(cfg.Logger)
	for _, s := range segments {
		asm.Add(s)
	}
	rings := asm.Closed()
	cfg.Logger.Debug("rings assembled", "count", len(rings))

	tree := BuildTree(rings)
	polys := tree.Flatten()
	cfg.Logger.Debug("containment tree flattened", "polygons", len(polys))

	return &Geometry{Rings: rings, Polygons: polys}, nil
}

// Convert runs the full pipeline — decode, binarize, trace, assemble,
// nest, triangulate, extrude — over imageBytes and returns the
// resulting triangle mesh. imageBytes must be a PNG or JPEG image.
func Convert(imageBytes []byte, cfg Config) ([]Triangle, error) {
	geo, err := BuildGeometry(imageBytes, cfg)
	if err != nil {
		return nil, err
	}

	var tris []Triangle
	for _, poly := range geo.Polygons {
		holeVerts := make([][]Vertex, len(poly.Holes))
		for i, h := range poly.Holes {
			holeVerts[i] = h.OpenVertices()
		}
		flat := FlattenPolygon(poly.Outer.OpenVertices(), holeVerts)

		indices, err := Earcut(flat)
		if err != nil {
			return nil, err
		}

		tris = append(tris, Extrude(poly, indices, flat, cfg)...)
	}
	cfg.Logger.Debug("extruded", "triangles", len(tris))

	return tris, nil
}

// ConvertToSTL runs [Convert] and writes the result to w as binary
// STL.
func ConvertToSTL(w io.Writer, imageBytes []byte, cfg Config) error {
	tris, err := Convert(imageBytes, cfg)
	if err != nil {
		return err
	}
	return WriteSTL(w, tris)
}

// ImageToSTL is [Convert] flattened into one 9-float32 component tuple
// per triangle (v1.x, v1.y, v1.z, v2.x, v2.y, v2.z, v3.x, v3.y, v3.z),
// for callers that want the wire-level shape directly instead of the
// structured [Triangle] slice.
func ImageToSTL(imageBytes []byte, cfg Config) ([][9]float32, error) {
	tris, err := Convert(imageBytes, cfg)
	if err != nil {
		return nil, err
	}
	out := make([][9]float32, len(tris))
	for i, t := range tris {
		out[i] = [9]float32{
			float32(t.A.X), float32(t.A.Y), float32(t.A.Z),
			float32(t.B.X), float32(t.B.Y), float32(t.B.Z),
			float32(t.C.X), float32(t.C.Y), float32(t.C.Z),
		}
	}
	return out, nil
}
