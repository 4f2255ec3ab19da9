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

package geojson

import (
	"encoding/json"
	"testing"
)

type fakeRing struct {
	verts []Point
}

func (f fakeRing) OpenVertices() []Point { return f.verts }

func TestRingsFeatureCollectionShape(t *testing.T) {
	r := fakeRing{verts: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
	data, err := Rings([]Ring{r})
	if err != nil {
		t.Fatalf("Rings: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["type"] != "FeatureCollection" {
		t.Errorf("type = %v, want FeatureCollection", decoded["type"])
	}
	features, ok := decoded["features"].([]any)
	if !ok || len(features) != 1 {
		t.Fatalf("got %v features, want 1", decoded["features"])
	}
}

func TestRingsCoordinatesCloseTheLoop(t *testing.T) {
	r := fakeRing{verts: []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}}
	data, err := Rings([]Ring{r})
	if err != nil {
		t.Fatalf("Rings: %v", err)
	}

	var decoded struct {
		Features []struct {
			Geometry struct {
				Coordinates [][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	coords := decoded.Features[0].Geometry.Coordinates[0]
	if len(coords) != len(r.verts)+1 {
		t.Fatalf("got %d coordinates, want %d (ring plus closing point)", len(coords), len(r.verts)+1)
	}
	if coords[0] != coords[len(coords)-1] {
		t.Error("first and last coordinate should match to close the ring")
	}
}

func TestPolygonsFeatureCollectionShape(t *testing.T) {
	outer := fakeRing{verts: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}
	hole := fakeRing{verts: []Point{{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2}}}

	data, err := Polygons([]Polygon{{Outer: outer, Holes: []Ring{hole}}})
	if err != nil {
		t.Fatalf("Polygons: %v", err)
	}

	var decoded struct {
		Features []struct {
			Geometry struct {
				Type        string          `json:"type"`
				Coordinates [][][][2]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Features[0].Geometry.Type != "MultiPolygon" {
		t.Errorf("geometry type = %q, want MultiPolygon", decoded.Features[0].Geometry.Type)
	}
	rings := decoded.Features[0].Geometry.Coordinates[0]
	if len(rings) != 2 {
		t.Fatalf("got %d rings in the polygon, want 2 (outer + 1 hole)", len(rings))
	}
}
