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

// vnode is one vertex of the doubly linked polygon used by [Earcut] and
// [FlattenPolygon].
type vnode struct {
	v          Vertex
	index      int
	prev, next *vnode
}

// FlattenPolygon lays an outer ring and its holes out as a single
// vertex loop with the holes bridged in:
// each hole is spliced in at the outer-ring vertex closest to (and
// left of) the hole's rightmost vertex.
func FlattenPolygon(outer []Vertex, holes [][]Vertex) []Vertex {
	ring := buildLinked(outer)
	for _, h := range holes {
		ring = eliminateHole(buildLinked(h), ring)
	}
	return linkedToSlice(ring)
}

func buildLinked(verts []Vertex) *vnode {
	if len(verts) == 0 {
		return nil
	}
	var first, last *vnode
	for _, v := range verts {
		n := &vnode{v: v}
		if first == nil {
			first = n
			n.prev, n.next = n, n
		} else {
			n.prev = last
			n.next = first
			last.next = n
			first.prev = n
		}
		last = n
	}
	return first
}

func linkedToSlice(start *vnode) []Vertex {
	if start == nil {
		return nil
	}
	var out []Vertex
	p := start
	for {
		out = append(out, p.v)
		p = p.next
		if p == start {
			break
		}
	}
	return out
}

// eliminateHole splices hole into outer at the bridge vertex found by
// findHoleBridge, returning the (possibly unchanged) outer list head.
func eliminateHole(hole, outer *vnode) *vnode {
	a := findHoleBridge(hole, outer)
	if a == nil {
		return outer
	}
	b := rightmostOf(hole)
	splitPolygon(a, b)
	return outer
}

// splitPolygon cuts the loop containing both a and b into two loops
// joined by a duplicated a-b edge: one loop keeps a and b themselves
// and the direct shortcut between them, the other keeps copies of a
// and b bridging the vertices that used to lie between them. Used
// both to splice a hole into its outer ring and, in reverse, to split
// an outer ring when ear clipping runs out of ears.
func splitPolygon(a, b *vnode) (a2, b2 *vnode) {
	an := a.next
	bp := b.prev

	a2 = &vnode{v: a.v, index: a.index}
	b2 = &vnode{v: b.v, index: b.index}

	a.next = b
	b.prev = a

	a2.next = an
	an.prev = a2

	b2.next = a2
	a2.prev = b2

	b2.prev = bp
	bp.next = b2

	return a2, b2
}

func rightmostOf(start *vnode) *vnode {
	best := start
	p := start.next
	for p != start {
		if p.v.X > best.v.X {
			best = p
		}
		p = p.next
	}
	return best
}

// findHoleBridge locates the outer-ring vertex visible to the left of
// hole's rightmost vertex: the candidate with the
// largest x among outer edges crossing the horizontal ray extending
// left from the hole vertex, breaking ties in favor of reflex-free
// visibility.
func findHoleBridge(hole, outer *vnode) *vnode {
	m := rightmostOf(hole)
	var best *vnode
	bestX := negInfConst

	p := outer
	for {
		q := p.next
		crossesY := (m.v.Y <= p.v.Y && m.v.Y >= q.v.Y) || (m.v.Y >= p.v.Y && m.v.Y <= q.v.Y)
		if crossesY && p.v.Y != q.v.Y {
			x := p.v.X + (m.v.Y-p.v.Y)*(q.v.X-p.v.X)/(q.v.Y-p.v.Y)
			if x <= m.v.X && x > bestX {
				bestX = x
				best = p
				if q.v.X > p.v.X {
					best = q
				}
			}
		}
		p = p.next
		if p == outer {
			break
		}
	}
	return best
}

const negInfConst = -1e308

// Earcut triangulates a flat, possibly-holed polygon, returning vertex
// indices grouped in threes (CCW winding). poly
// is a single counter-clockwise vertex loop; a polygon with holes is
// passed as the bridged loop returned by [FlattenPolygon], and the
// returned indices refer to positions in poly.
func Earcut(poly []Vertex) ([]int, error) {
	if len(poly) < 3 {
		return nil, &TriangulationFailed{Reason: "fewer than 3 vertices"}
	}

	ring := buildIndexed(poly)
	var tris []int
	ring = filterCollinear(ring)
	if ring == nil {
		return nil, &TriangulationFailed{Reason: "polygon degenerates to a line"}
	}

	remaining := countRemaining(ring)
	guard := remaining * remaining // generous bound; a stuck loop means a real bug
	for remaining > 2 && guard > 0 {
		guard--
		ear := ring
		clipped := false
		for i := 0; i < remaining; i++ {
			if isEar(ear) {
				tris = append(tris, ear.prev.index, ear.index, ear.next.index)
				ear.prev.next = ear.next
				ear.next.prev = ear.prev
				if ear == ring {
					ring = ear.next
				}
				remaining--
				clipped = true
				break
			}
			ear = ear.next
		}
		if !clipped {
			// No convex, empty ear exists: split along a diagonal
			// between two non-adjacent vertices and recurse on both
			// halves.
			return earcutSplit(ring, tris)
		}
	}
	if remaining > 2 {
		return nil, &TriangulationFailed{Reason: "triangulation did not converge"}
	}
	return tris, nil
}

func buildIndexed(poly []Vertex) *vnode {
	var first, last *vnode
	for i, v := range poly {
		n := &vnode{v: v, index: i}
		if first == nil {
			first = n
			n.prev, n.next = n, n
		} else {
			n.prev = last
			n.next = first
			last.next = n
			first.prev = n
		}
		last = n
	}
	return first
}

func countRemaining(start *vnode) int {
	if start == nil {
		return 0
	}
	n := 1
	for p := start.next; p != start; p = p.next {
		n++
	}
	return n
}

// filterCollinear removes vertices that contribute zero area with
// their neighbors, which would otherwise block ear detection forever.
func filterCollinear(start *vnode) *vnode {
	if start == nil {
		return nil
	}
	p := start
	again := true
	for again {
		again = false
		if p.prev == p.next {
			return nil
		}
		area := signedArea2(p.prev.v, p.v, p.next.v)
		if area == 0 {
			p.prev.next = p.next
			p.next.prev = p.prev
			if p == start {
				start = p.next
			}
			p = p.next
			again = true
			continue
		}
		p = p.next
		if p == start {
			break
		}
	}
	return start
}

func signedArea2(a, b, c Vertex) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// isEar reports whether the triangle at p (p.prev, p, p.next) is
// convex and contains no other polygon vertex. Copies of the
// triangle's own corners, which hole bridging creates, do not count.
func isEar(p *vnode) bool {
	a, b, c := p.prev.v, p.v, p.next.v
	if signedArea2(a, b, c) <= 0 {
		return false
	}
	for q := p.next.next; q != p.prev; q = q.next {
		if q.v == a || q.v == b || q.v == c {
			continue
		}
		if pointInTriangle(q.v, a, b, c) {
			return false
		}
	}
	return true
}

func pointInTriangle(p, a, b, c Vertex) bool {
	d1 := signedArea2(a, b, p)
	d2 := signedArea2(b, c, p)
	d3 := signedArea2(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// earcutSplit cuts the remaining polygon along the diagonal between
// its first vertex and a non-adjacent vertex it can see, then
// triangulates each half independently.
func earcutSplit(start *vnode, tris []int) ([]int, error) {
	a := start
	for b := a.next.next; b != a.prev; b = b.next {
		if !diagonal(a, b) {
			continue
		}
		_, b2 := splitPolygon(a, b)

		left, err := Earcut(linkedToSlice(a))
		if err != nil {
			return nil, err
		}
		right, err := Earcut(linkedToSlice(b2))
		if err != nil {
			return nil, err
		}
		tris = append(tris, remapTriangles(left, a)...)
		tris = append(tris, remapTriangles(right, b2)...)
		return tris, nil
	}
	return nil, &TriangulationFailed{Reason: "no valid diagonal found"}
}

// remapTriangles converts index triples generated against the
// re-numbered slice produced by linkedToSlice(start) back to the
// original polygon's vertex indices.
func remapTriangles(tris []int, start *vnode) []int {
	order := []*vnode{}
	p := start
	for {
		order = append(order, p)
		p = p.next
		if p == start {
			break
		}
	}
	out := make([]int, len(tris))
	for i, t := range tris {
		out[i] = order[t].index
	}
	return out
}

// diagonal reports whether a and b are a valid triangulation diagonal:
// the segment between them stays inside the polygon and crosses none
// of its edges.
func diagonal(a, b *vnode) bool {
	if a == b || a.next == b || a.prev == b {
		return false
	}
	if !locallyInside(a, b) || !locallyInside(b, a) {
		return false
	}
	p := a
	for {
		q := p.next
		if p != a && q != a && p != b && q != b && segmentsIntersect(p.v, q.v, a.v, b.v) {
			return false
		}
		p = p.next
		if p == a {
			break
		}
	}
	return true
}

func locallyInside(a, b *vnode) bool {
	if signedArea2(a.prev.v, a.v, a.next.v) < 0 {
		return signedArea2(a.v, b.v, a.next.v) >= 0 && signedArea2(a.v, a.prev.v, b.v) >= 0
	}
	return signedArea2(a.v, b.v, a.prev.v) < 0 || signedArea2(a.v, a.next.v, b.v) < 0
}

func segmentsIntersect(p1, q1, p2, q2 Vertex) bool {
	d1 := signedArea2(p2, q2, p1)
	d2 := signedArea2(p2, q2, q1)
	d3 := signedArea2(p1, q1, p2)
	d4 := signedArea2(p1, q1, q2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}
