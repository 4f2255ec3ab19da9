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

// Package geojson renders intermediate pipeline geometry as GeoJSON,
// for visually debugging the contour tracer and containment tree
// outside of the final 3D mesh.
package geojson

import (
	"encoding/json"

	"seehuhn.de/go/geom/vec"
)

type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string         `json:"type"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Ring is the minimal shape this package needs from a closed contour
// ring: its vertices in order, without a duplicated closing point.
type Ring interface {
	OpenVertices() []Point
}

// Point is a single 2D coordinate, the same type the rest of the
// pipeline uses for a vertex.
type Point = vec.Vec2

func ringCoordinates(r Ring) [][2]float64 {
	verts := r.OpenVertices()
	out := make([][2]float64, 0, len(verts)+1)
	for _, v := range verts {
		out = append(out, [2]float64{v.X, v.Y})
	}
	if len(verts) > 0 {
		out = append(out, [2]float64{verts[0].X, verts[0].Y})
	}
	return out
}

// Rings renders a flat list of closed rings as a MultiLineString
// feature collection, useful for inspecting the assembler's output
// before containment nesting.
func Rings(rings []Ring) ([]byte, error) {
	coords := make([][][2]float64, len(rings))
	for i, r := range rings {
		coords[i] = ringCoordinates(r)
	}
	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{{
			Type: "Feature",
			Geometry: geometry{
				Type:        "MultiLineString",
				Coordinates: coords,
			},
			Properties: map[string]any{"name": "closed_rings"},
		}},
	}
	return json.MarshalIndent(fc, "", "  ")
}

// Polygon is one outer ring paired with its hole rings, the shape a
// containment tree flattens into before triangulation.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// Polygons renders containment-tree output as a MultiPolygon feature
// collection, one polygon per outer/holes group.
func Polygons(polys []Polygon) ([]byte, error) {
	coords := make([][][][2]float64, len(polys))
	for i, p := range polys {
		rings := make([][][2]float64, 0, len(p.Holes)+1)
		rings = append(rings, ringCoordinates(p.Outer))
		for _, h := range p.Holes {
			rings = append(rings, ringCoordinates(h))
		}
		coords[i] = rings
	}
	fc := featureCollection{
		Type: "FeatureCollection",
		Features: []feature{{
			Type: "Feature",
			Geometry: geometry{
				Type:        "MultiPolygon",
				Coordinates: coords,
			},
			Properties: map[string]any{"name": "nested_polygons"},
		}},
	}
	return json.MarshalIndent(fc, "", "  ")
}
