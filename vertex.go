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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Vertex is a 2D point with 64-bit real coordinates. Equality is exact
// componentwise; there is no epsilon anywhere in the geometry pipeline
// except in zig-zag angle comparisons (see assembler.go).
type Vertex = vec.Vec2

// Vertex3 is a 3D point, produced by appending a z coordinate to a
// Vertex when lifting 2D triangles into the extruded solid.
type Vertex3 struct {
	X, Y, Z float64
}

// to3 appends a z coordinate to v.
func to3(v Vertex, z float64) Vertex3 {
	return Vertex3{X: v.X, Y: v.Y, Z: z}
}

// cross returns the z component of the 2D cross product a x b.
func cross(a, b Vertex) float64 {
	return a.X*b.Y - a.Y*b.X
}

// angleBetween returns the signed angle from vector a to vector b, in
// (-pi, pi], positive for a counter-clockwise turn.
func angleBetween(a, b Vertex) float64 {
	return math.Atan2(cross(a, b), a.Dot(b))
}

// Segment is an ordered pair of vertices emitted by the contour
// tracer. It has no identity beyond insertion into the [Assembler].
type Segment struct {
	A, B Vertex
}
