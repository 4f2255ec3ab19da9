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

// node is one entry of the containment forest: a ring plus the rings
// directly nested inside it.
type node struct {
	ring     *Ring
	children []*node
}

// Tree is a forest of containment nodes built from a flat list of
// closed rings. The roots are the outermost rings
// (always non-holes, since an un-nested ring can't enclose background).
type Tree struct {
	roots []*node
}

// BuildTree inserts every ring into a containment forest by testing
// point containment against one representative vertex per ring.
// Insertion is O(n^2) in the ring count, trading an indexed structure
// for a simple, obviously correct algorithm at the ring counts this
// pipeline expects.
func BuildTree(rings []*Ring) *Tree {
	t := &Tree{}
	for _, r := range rings {
		t.insert(r)
	}
	return t
}

// insert places r into the forest, reparenting any existing root-level
// node that r turns out to contain.
func (t *Tree) insert(r *Ring) {
	n := &node{ring: r}
	parent := findParent(t.roots, r)
	if parent == nil {
		// r has no parent among current roots: it may still become
		// the parent of some of them.
		var remaining []*node
		for _, root := range t.roots {
			if ringContains(r, root.ring) {
				n.children = append(n.children, root)
			} else {
				remaining = append(remaining, root)
			}
		}
		t.roots = append(remaining, n)
		return
	}
	// r nests under an existing node; reclaim any of that node's
	// current children that r itself contains.
	var remaining []*node
	for _, c := range parent.children {
		if ringContains(r, c.ring) {
			n.children = append(n.children, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	parent.children = append(remaining, n)
}

// findParent walks the forest looking for the innermost existing node
// whose ring contains r's first vertex.
func findParent(nodes []*node, r *Ring) *node {
	for _, n := range nodes {
		if !ringContains(n.ring, r) {
			continue
		}
		if deeper := findParent(n.children, r); deeper != nil {
			return deeper
		}
		return n
	}
	return nil
}

func ringContains(outer, candidate *Ring) bool {
	return outer.Contains(candidate.At(0))
}

// PolygonWithHoles is one outer ring together with the hole rings
// nested directly inside it, ready for triangulation.
type PolygonWithHoles struct {
	Outer *Ring
	Holes []*Ring
}

// Flatten walks the forest and returns one [PolygonWithHoles] per solid
// region: an outer ring paired with its immediate hole children. Holes
// of holes (islands nested inside a hole) start new solid regions of
// their own, collected via a depth-alternating, iterative (non-recursive)
// stack walk.
func (t *Tree) Flatten() []PolygonWithHoles {
	var out []PolygonWithHoles

	type frame struct {
		n     *node
		isOut bool // true if n.ring is an outer ring at this depth
	}

	var stack []frame
	for _, r := range t.roots {
		stack = append(stack, frame{n: r, isOut: true})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !f.isOut {
			// f.n is a hole; its children are islands, each the outer
			// ring of a new solid region.
			for _, c := range f.n.children {
				stack = append(stack, frame{n: c, isOut: true})
			}
			continue
		}

		poly := PolygonWithHoles{Outer: f.n.ring}
		for _, c := range f.n.children {
			poly.Holes = append(poly.Holes, c.ring)
			stack = append(stack, frame{n: c, isOut: false})
		}
		out = append(out, poly)
	}

	return out
}
