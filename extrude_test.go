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

func TestExtrudeSquareProducesLidsAndRibbon(t *testing.T) {
	outer := square(10)
	poly := PolygonWithHoles{Outer: outer}
	flat := outer.OpenVertices()
	tris, err := Earcut(flat)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}

	cfg := NewConfig(WithHeight(5), WithScale(1))
	solid := Extrude(poly, tris, flat, cfg)

	// A square earcuts into 2 triangles, each contributing a top and
	// bottom lid triangle (4 total), plus 4 ribbon sides * 2
	// triangles each (8 total) = 12.
	if len(solid) != 12 {
		t.Fatalf("got %d triangles, want 12", len(solid))
	}

	var sawZ0, sawZ5 bool
	for _, tri := range solid {
		for _, v := range []Vertex3{tri.A, tri.B, tri.C} {
			if v.Z == 0 {
				sawZ0 = true
			}
			if v.Z == 5 {
				sawZ5 = true
			}
		}
	}
	if !sawZ0 || !sawZ5 {
		t.Error("extruded solid should have vertices at both z=0 and z=height")
	}
}

func TestExtrudeAppliesScale(t *testing.T) {
	outer := square(10)
	poly := PolygonWithHoles{Outer: outer}
	flat := outer.OpenVertices()
	tris, err := Earcut(flat)
	if err != nil {
		t.Fatalf("Earcut: %v", err)
	}

	cfg := NewConfig(WithHeight(1), WithScale(0.1))
	solid := Extrude(poly, tris, flat, cfg)

	for _, tri := range solid {
		for _, v := range []Vertex3{tri.A, tri.B, tri.C} {
			if v.X > 1.0001 || v.Y > 1.0001 || v.Z > 0.1001 {
				t.Fatalf("vertex %+v exceeds scaled bounds for a 10x10x1 solid at scale 0.1", v)
			}
		}
	}
}

func TestEmitRibbonProducesQuadPerSegment(t *testing.T) {
	outer := square(10)
	var count int
	emitRibbon(outer, false, 5, func(a, b, c Vertex3) { count++ })
	// square has 4 segments (5 vertices including the closing
	// duplicate), each producing 2 ribbon triangles.
	if want := 4 * 2; count != want {
		t.Errorf("got %d ribbon triangles, want %d", count, want)
	}
}
