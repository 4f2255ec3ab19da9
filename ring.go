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

import "math"

// Ring is an ordered sequence of vertices, stored as a linear slice
// with a duplicated closing vertex once it is closed. It caches its
// axis-aligned bounding box as vertices are added, and memoizes its
// hole/outer classification the first time [Ring.IsHole] is called.
//
// A Ring is mutable while open (see [Assembler]); once closed it
// should not be mutated further.
type Ring struct {
	verts []Vertex

	haveBounds             bool
	minX, maxX, minY, maxY float64

	holeKnown bool
	hole      bool
}

// newRingFromSegment builds a 2-vertex open ring from a segment.
func newRingFromSegment(s Segment) *Ring {
	r := &Ring{}
	r.pushBack(s.A)
	r.pushBack(s.B)
	return r
}

// Len returns the number of vertices currently in the ring.
func (r *Ring) Len() int { return len(r.verts) }

// Front returns the first vertex.
func (r *Ring) Front() Vertex { return r.verts[0] }

// Back returns the last vertex.
func (r *Ring) Back() Vertex { return r.verts[len(r.verts)-1] }

// At returns the vertex at index i.
func (r *Ring) At(i int) Vertex { return r.verts[i] }

// Vertices returns the ring's vertices, including the duplicated
// closing vertex if the ring is closed. The returned slice must not be
// mutated by the caller.
func (r *Ring) Vertices() []Vertex { return r.verts }

// OpenVertices returns the ring's vertices without a duplicated
// closing vertex, suitable for feeding to the triangulator.
func (r *Ring) OpenVertices() []Vertex {
	if r.Closed() {
		return r.verts[:len(r.verts)-1]
	}
	return r.verts
}

func (r *Ring) extend(v Vertex) {
	if !r.haveBounds {
		r.minX, r.maxX, r.minY, r.maxY = v.X, v.X, v.Y, v.Y
		r.haveBounds = true
		return
	}
	r.minX = math.Min(r.minX, v.X)
	r.maxX = math.Max(r.maxX, v.X)
	r.minY = math.Min(r.minY, v.Y)
	r.maxY = math.Max(r.maxY, v.Y)
}

func (r *Ring) pushBack(v Vertex) {
	r.extend(v)
	r.verts = append(r.verts, v)
}

func (r *Ring) pushFront(v Vertex) {
	r.extend(v)
	r.verts = append([]Vertex{v}, r.verts...)
}

func (r *Ring) popBack() Vertex {
	n := len(r.verts) - 1
	v := r.verts[n]
	r.verts = r.verts[:n]
	return v
}

func (r *Ring) popFront() Vertex {
	v := r.verts[0]
	r.verts = r.verts[1:]
	return v
}

// reverse reverses the order of the ring's vertices in place.
func (r *Ring) reverse() {
	for i, j := 0, len(r.verts)-1; i < j; i, j = i+1, j-1 {
		r.verts[i], r.verts[j] = r.verts[j], r.verts[i]
	}
}

// Closed reports whether the ring's first and last vertex are exactly
// equal.
func (r *Ring) Closed() bool {
	if len(r.verts) < 2 {
		return false
	}
	return r.verts[0] == r.verts[len(r.verts)-1]
}

// BBox returns the ring's cached axis-aligned bounding box.
func (r *Ring) BBox() (minX, maxX, minY, maxY float64) {
	return r.minX, r.maxX, r.minY, r.maxY
}

// PossiblyContains is a cheap bounding-box test that must hold for
// [Ring.Contains] to possibly return true.
func (r *Ring) PossiblyContains(v Vertex) bool {
	if !r.haveBounds {
		return true
	}
	return v.X >= r.minX && v.X <= r.maxX && v.Y >= r.minY && v.Y <= r.maxY
}

// segments iterates over the ring's consecutive vertex pairs.
func (r *Ring) segments(yield func(a, b Vertex) bool) {
	for i := 0; i+1 < len(r.verts); i++ {
		if !yield(r.verts[i], r.verts[i+1]) {
			return
		}
	}
}

// yAt returns the y value of the line through a-b at the given x. For
// a vertical or horizontal segment it returns the segment's own y,
// since in those degenerate cases the caller only uses this value to
// disambiguate among segments crossing a fixed x, not the other one.
func yAt(x float64, a, b Vertex) float64 {
	if a.Y == b.Y {
		return a.Y
	}
	if a.X == b.X {
		return a.Y
	}
	m := (b.Y - a.Y) / (b.X - a.X)
	c := a.Y - m*a.X
	return m*x + c
}

// IsHole reports whether the closed ring encloses background rather
// than foreground, memoizing the result. The test scans a vertical
// line at the midpoint of the ring's first x and the next vertex with
// a different x, finds the lowest segment crossing that line, and
// checks its direction: right-to-left means hole, left-to-right means
// outer.
func (r *Ring) IsHole() bool {
	if r.holeKnown {
		return r.hole
	}
	r.hole = computeIsHole(r)
	r.holeKnown = true
	return r.hole
}

func computeIsHole(r *Ring) bool {
	firstX := r.verts[0].X
	var nextX float64
	found := false
	for _, v := range r.verts {
		if v.X != firstX {
			nextX = v.X
			found = true
			break
		}
	}
	if !found {
		panic("raster2stl: closed ring has no vertex with a different x")
	}
	midX := (firstX + nextX) / 2

	var (
		haveLowest       bool
		lowestY          float64
		lowestA, lowestB Vertex
	)
	r.segments(func(a, b Vertex) bool {
		crosses := (a.X < midX && b.X > midX) || (a.X > midX && b.X < midX)
		if !crosses {
			return true
		}
		y := yAt(midX, a, b)
		if !haveLowest || y < lowestY {
			haveLowest, lowestY, lowestA, lowestB = true, y, a, b
		}
		return true
	})
	if !haveLowest {
		panic("raster2stl: closed ring has no segment crossing its scan line")
	}
	return lowestB.X-lowestA.X <= 0
}

// upperLowerBounds finds, among the ring's segments whose x-range
// includes target.x (endpoints included), the one with least y greater than target.y
// ("above") and the one with greatest y less than or equal to
// target.y ("below").
func upperLowerBounds(r *Ring, target Vertex) (above, below [2]Vertex, haveAbove, haveBelow bool) {
	var aboveY, belowY float64
	r.segments(func(a, b Vertex) bool {
		crosses := (a.X <= target.X && b.X >= target.X) || (a.X >= target.X && b.X <= target.X)
		if !crosses {
			return true
		}
		y := yAt(target.X, a, b)
		if y > target.Y {
			if !haveAbove || y < aboveY {
				haveAbove, aboveY, above = true, y, [2]Vertex{a, b}
			}
		} else {
			if !haveBelow || y > belowY {
				haveBelow, belowY, below = true, y, [2]Vertex{a, b}
			}
		}
		return true
	})
	return
}

// Contains reports whether the closed ring contains target, dispatched
// on whether the ring is an outer ring or a hole. It first checks
// [Ring.PossiblyContains] and returns false for points outside the
// ring's bounding box.
func (r *Ring) Contains(target Vertex) bool {
	if !r.PossiblyContains(target) {
		return false
	}
	above, below, haveAbove, haveBelow := upperLowerBounds(r, target)
	if !haveAbove || !haveBelow {
		return false
	}
	var aboveOK, belowOK bool
	if r.IsHole() {
		aboveOK = above[1].X > above[0].X // above runs left-to-right
		belowOK = below[1].X < below[0].X // below runs right-to-left
	} else {
		aboveOK = above[1].X < above[0].X // above runs right-to-left
		belowOK = below[1].X > below[0].X // below runs left-to-right
	}
	return aboveOK && belowOK
}
