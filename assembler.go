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
	"log/slog"
	"math"
)

const (
	zigZagEpsilon    = 1e-8
	minZigZagPeriods = 2
)

// Assembler incrementally merges segments into closed rings, per
// Use [NewAssembler] to create one, feed it segments with
// [Assembler.Add], and read [Assembler.Closed] once all segments have
// been added.
type Assembler struct {
	open   []*Ring
	closed []*Ring
	log    *slog.Logger
}

// NewAssembler returns an empty Assembler. A nil logger is replaced by
// slog.Default().
func NewAssembler(log *slog.Logger) *Assembler {
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{log: log}
}

// Closed returns the rings that have been closed so far.
func (a *Assembler) Closed() []*Ring { return a.closed }

// Add inserts a segment into the assembler (insertion
// algorithm).
func (a *Assembler) Add(s Segment) {
	if s.A == s.B {
		// A degenerate zero-length segment can't happen from the
		// tracer, but guard against it rather than silently merging.
		return
	}

	ring := newRingFromSegment(s)
	if ring.Front() == ring.Back() {
		a.markClosed(ring)
		return
	}

	var found []int
	for i, target := range a.open {
		if matches(target, ring) {
			found = append(found, i)
			if len(found) == 2 {
				break
			}
		}
	}

	switch len(found) {
	case 0:
		a.open = append(a.open, ring)
	case 1:
		i := found[0]
		connect(a.open[i], ring)
		a.maybeClose(i)
	case 2:
		i, j := found[0], found[1]
		connect(a.open[i], ring)
		other := a.removeOpen(j)
		connect(a.open[i], other)
		a.maybeClose(i)
	default:
		panic("raster2stl: more than two open rings matched a new segment")
	}
}

func matches(target, s *Ring) bool {
	tf, tb := target.Front(), target.Back()
	sf, sb := s.Front(), s.Back()
	return sf == tf || sf == tb || sb == tf || sb == tb
}

func (a *Assembler) removeOpen(i int) *Ring {
	r := a.open[i]
	a.open = append(a.open[:i], a.open[i+1:]...)
	return r
}

func (a *Assembler) maybeClose(i int) {
	r := a.open[i]
	if r.Closed() {
		a.open = append(a.open[:i], a.open[i+1:]...)
		a.markClosed(r)
	}
}

func (a *Assembler) markClosed(r *Ring) {
	r.IsHole() // memoize the winding test now, while the ring is fresh
	a.closed = append(a.closed, r)
	a.log.Debug("ring closed", "vertices", r.Len(), "hole", r.IsHole())
}

// tipRedundant reports whether middle is collinear with its neighbors
// left and right, and so can be dropped when two rings are joined at
// middle.
func tipRedundant(left, middle, right Vertex) bool {
	if left.X == middle.X {
		return middle.X == right.X
	}
	if middle.X == right.X {
		return left.X == middle.X
	}
	lSlope := (middle.Y - left.Y) / (middle.X - left.X)
	rSlope := (right.Y - middle.Y) / (right.X - middle.X)
	return lSlope == rSlope
}

// connect concatenates other onto target, reversing other if needed so
// the touching endpoints align, dropping the duplicated touching
// vertex, collapsing a collinear junction, and finally eliminating any
// zig-zag artifact left at the join.
func connect(target, other *Ring) {
	tf, tb := target.Front(), target.Back()
	of, ob := other.Front(), other.Back()

	switch {
	case tb == of && tf == ob:
		other.popFront()
		joinBack(target, other)
	case tb == ob && tf == of:
		other.popBack()
		other.reverse()
		joinBack(target, other)
	case tb == of:
		other.popFront()
		joinBack(target, other)
	case tb == ob:
		other.popBack()
		other.reverse()
		joinBack(target, other)
	case tf == of:
		other.popFront()
		joinFront(target, other)
	case tf == ob:
		other.popBack()
		other.reverseAppendFront(target)
		return
	default:
		panic("raster2stl: no matching endpoints to connect rings")
	}
}

// joinBack appends other's remaining vertices to target's back,
// dropping the junction vertex if it turns out to be collinear.
func joinBack(target, other *Ring) {
	l := target.Len()
	if l >= 2 && other.Len() >= 1 {
		if tipRedundant(target.At(l-2), target.At(l-1), other.At(0)) {
			target.popBack()
		}
	}
	for _, v := range other.verts {
		target.pushBack(v)
	}
	maybeRemoveZigZags(target)
}

// joinFront prepends other's remaining vertices to target's front in
// reverse order (other.front() already matches target.front() and has
// been popped, so other's first remaining vertex ends up next to the
// junction), dropping the junction vertex if collinear.
func joinFront(target, other *Ring) {
	if other.Len() >= 1 && target.Len() >= 2 {
		if tipRedundant(other.At(0), target.At(0), target.At(1)) {
			target.popFront()
		}
	}
	for i := 0; i < other.Len(); i++ {
		target.pushFront(other.At(i))
	}
	maybeRemoveZigZags(target)
}

// reverseAppendFront handles the tf == ob case: other's back (already
// popped) matched target's front, so other's remaining vertices are
// prepended to target in their current order.
func (other *Ring) reverseAppendFront(target *Ring) {
	if other.Len() >= 1 && target.Len() >= 2 {
		if tipRedundant(other.At(other.Len()-1), target.At(0), target.At(1)) {
			target.popFront()
		}
	}
	for i := other.Len() - 1; i >= 0; i-- {
		target.pushFront(other.At(i))
	}
	maybeRemoveZigZags(target)
}

// edgeAngle returns the signed interior angle at ring vertex index,
// which must be strictly between 0 and Len()-1.
func edgeAngle(r *Ring, index int) float64 {
	middle := r.At(index)
	a := r.At(index + 1).Sub(middle)
	b := r.At(index - 1).Sub(middle)
	return angleBetween(a, b)
}

// edgeSegmentLength returns the length of the segment starting at
// ring vertex index.
func edgeSegmentLength(r *Ring, index int) float64 {
	return r.At(index).Sub(r.At(index + 1)).Length()
}

// maybeRemoveZigZags scans backward from the ring's new tail for a
// 45-degree staircase artifact and, if at least minZigZagPeriods full
// periods are found, collapses it to a single straight connection
// (staircase collapse).
func maybeRemoveZigZags(r *Ring) {
	minLength := minZigZagPeriods*2 + 2
	n := r.Len()
	if n < minLength {
		return
	}

	index := n - 3
	nonZigZagAngle := edgeAngle(r, index+1)
	initialZagAngle := edgeAngle(r, index)
	initialZigAngle := edgeAngle(r, index-1)

	if math.Abs(nonZigZagAngle-initialZigAngle) < zigZagEpsilon {
		return // the zig-zag run has not ended yet
	}
	if math.Abs(initialZagAngle+initialZigAngle) > zigZagEpsilon {
		return // angles don't cancel, not a zig-zag
	}

	initialZagLength := edgeSegmentLength(r, index)
	initialZigLength := edgeSegmentLength(r, index-1)

	count := 0
	for index-1 > 0 {
		zagAngle := edgeAngle(r, index)
		zigAngle := edgeAngle(r, index-1)
		if math.Abs(zagAngle+zigAngle) > zigZagEpsilon {
			break
		}
		zagLength := edgeSegmentLength(r, index)
		zigLength := edgeSegmentLength(r, index-1)
		if zigLength != initialZigLength || zagLength != initialZagLength {
			break
		}
		count++
		index -= 2
	}

	stragglingZag := 0
	if index >= 2 {
		zagAngle := edgeAngle(r, index)
		zagLength := edgeSegmentLength(r, index)
		if math.Abs(zagAngle-initialZagAngle) < zigZagEpsilon && zagLength == initialZagLength {
			stragglingZag = 1
		}
	}

	if count < minZigZagPeriods {
		return
	}

	splitAt := n - 2 - 2*count - stragglingZag
	tail := r.verts[splitAt:]
	last := tail[len(tail)-1]
	r.verts = append(r.verts[:splitAt], tail[len(tail)-2], last)
}
