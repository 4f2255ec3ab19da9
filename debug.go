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

import "github.com/gomesh/raster2stl/geojson"

// DebugRingsGeoJSON renders the assembler's closed rings as GeoJSON,
// for inspecting contour tracing independently of containment nesting
// and triangulation.
func DebugRingsGeoJSON(rings []*Ring) ([]byte, error) {
	out := make([]geojson.Ring, len(rings))
	for i, r := range rings {
		out[i] = r
	}
	return geojson.Rings(out)
}

// DebugPolygonsGeoJSON renders a containment tree's flattened
// outer/hole groups as GeoJSON.
func DebugPolygonsGeoJSON(polys []PolygonWithHoles) ([]byte, error) {
	out := make([]geojson.Polygon, len(polys))
	for i, p := range polys {
		holes := make([]geojson.Ring, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = h
		}
		out[i] = geojson.Polygon{Outer: p.Outer, Holes: holes}
	}
	return geojson.Polygons(out)
}
