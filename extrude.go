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

import "seehuhn.de/go/geom/matrix"

// Triangle is one facet of the extruded solid: three vertices wound
// so that, for a watertight solid, the cross product (B-A) x (C-A)
// points outward.
type Triangle struct {
	A, B, C Vertex3
}

// applyMatrix applies the affine transform m to v's x and y coordinates,
// leaving z untouched; z is scaled separately by the caller since m is
// a 2D affine transform.
func applyMatrix(v Vertex3, m matrix.Matrix) (x, y float64) {
	return m[0]*v.X + m[2]*v.Y + m[4], m[1]*v.X + m[3]*v.Y + m[5]
}

// Extrude lifts a triangulated polygon-with-holes into a solid: a top
// lid at z=height, a bottom lid at z=0, and a vertical ribbon quad
// (as two triangles) along every ring segment of the outer ring and
// its holes. The uniform scale in cfg is applied to x and y (and, so
// the solid keeps its proportions, to z and the height) via an affine
// [matrix.Matrix], following the CTM-based coordinate
// transforms elsewhere in the pipeline.
func Extrude(poly PolygonWithHoles, tris []int, flat []Vertex, cfg Config) []Triangle {
	scale := matrix.Scale(cfg.Scale, cfg.Scale)
	scaleZ := cfg.Scale

	var out []Triangle
	emit := func(a, b, c Vertex3) {
		out = append(out, Triangle{
			A: scaleVertex3(a, scale, scaleZ),
			B: scaleVertex3(b, scale, scaleZ),
			C: scaleVertex3(c, scale, scaleZ),
		})
	}

	for i := 0; i+2 < len(tris); i += 3 {
		i0, i1, i2 := tris[i], tris[i+1], tris[i+2]
		p0, p1, p2 := flat[i0], flat[i1], flat[i2]

		// Top lid: ear-cut winding is already CCW in xy, which with
		// z=height and a standard right-handed frame points +z.
		emit(to3(p0, cfg.Height), to3(p1, cfg.Height), to3(p2, cfg.Height))

		// Bottom lid: swap two vertices to flip the winding so the
		// normal points -z.
		emit(to3(p0, 0), to3(p2, 0), to3(p1, 0))
	}

	emitRibbon(poly.Outer, false, cfg.Height, emit)
	for _, h := range poly.Holes {
		emitRibbon(h, true, cfg.Height, emit)
	}

	return out
}

func scaleVertex3(v Vertex3, m matrix.Matrix, scaleZ float64) Vertex3 {
	x, y := applyMatrix(v, m)
	return Vertex3{X: x, Y: y, Z: v.Z * scaleZ}
}

// emitRibbon walls the ring with vertical quads, each split into two
// triangles. Outer rings and holes need opposite vertex orderings so
// that both kinds of ring end up with their wall normals pointing
// away from the solid.
func emitRibbon(r *Ring, isHole bool, height float64, emit func(a, b, c Vertex3)) {
	n := r.Len()
	if n < 2 {
		return
	}
	for i := 0; i+1 < n; i++ {
		a, b := r.At(i), r.At(i+1)
		aTop, bTop := to3(a, height), to3(b, height)
		aBot, bBot := to3(a, 0), to3(b, 0)
		if isHole {
			emit(aBot, bBot, bTop)
			emit(aBot, bTop, aTop)
		} else {
			emit(aBot, bTop, bBot)
			emit(aBot, aTop, bTop)
		}
	}
}
