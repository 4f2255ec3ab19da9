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

import "testing"

func totalArea(poly []Vertex, tris []int) float64 {
	var sum float64
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := poly[tris[i]], poly[tris[i+1]], poly[tris[i+2]]
		sum += signedArea2(a, b, c) / 2
	}
	return sum
}

func TestEarcutSquare(t *testing.T) {
	poly := []Vertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	tris, err := Earcut(poly)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}
	if len(tris) != 6 {
		t.Fatalf("got %d indices (%d triangles), want 6 (2 triangles)", len(tris), len(tris)/3)
	}
	if area := totalArea(poly, tris); area != 100 {
		t.Errorf("total triangle area = %v, want 100", area)
	}
}

func TestEarcutAllTrianglesPositiveArea(t *testing.T) {
	poly := []Vertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 12, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	tris, err := Earcut(poly)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := poly[tris[i]], poly[tris[i+1]], poly[tris[i+2]]
		if area := signedArea2(a, b, c); area <= 0 {
			t.Errorf("triangle %d has non-positive signed area %v, want CCW winding", i/3, area)
		}
	}
}

func TestEarcutTriangleCountFormula(t *testing.T) {
	// A simple polygon (no collinear vertices to filter) triangulates
	// into exactly n-2 triangles for n vertices.
	poly := []Vertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 12, Y: 5}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	tris, err := Earcut(poly)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}
	wantTriangles := len(poly) - 2
	if got := len(tris) / 3; got != wantTriangles {
		t.Errorf("got %d triangles, want %d (= %d vertices - 2)", got, wantTriangles, len(poly))
	}
}

func TestEarcutWithHoleAreaExcludesHole(t *testing.T) {
	outer := []Vertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	hole := []Vertex{
		{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2},
	}
	flat := FlattenPolygon(outer, [][]Vertex{hole})
	tris, err := Earcut(flat)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}
	area := totalArea(flat, tris)
	want := 100.0 - 4.0
	if diff := area - want; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("triangulated area = %v, want %v (outer minus hole)", area, want)
	}
}

func TestEarcutTooFewVertices(t *testing.T) {
	_, err := Earcut([]Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err == nil {
		t.Fatal("expected TriangulationFailed for a 2-vertex polygon")
	}
	if _, ok := err.(*TriangulationFailed); !ok {
		t.Fatalf("got %T, want *TriangulationFailed", err)
	}
}

func TestFlattenPolygonVertexCount(t *testing.T) {
	outer := []Vertex{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	hole := []Vertex{
		{X: 2, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 2},
	}
	flat := FlattenPolygon(outer, [][]Vertex{hole})
	// Bridging duplicates the bridge endpoints (one outer, one hole
	// vertex), adding 2 vertices beyond the raw outer+hole count.
	want := len(outer) + len(hole) + 2
	if len(flat) != want {
		t.Errorf("got %d flattened vertices, want %d", len(flat), want)
	}
}
