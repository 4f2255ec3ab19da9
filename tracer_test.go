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

func newBinaryImage(w, h int, fg func(x, y int) bool) *BinaryImage {
	b := &BinaryImage{Width: w, Height: h, fg: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.set(x, y, fg(x, y))
		}
	}
	return b
}

func TestTraceTooSmall(t *testing.T) {
	img := newBinaryImage(1, 5, func(x, y int) bool { return true })
	_, err := Trace(img)
	if err == nil {
		t.Fatal("expected DimensionError, got nil")
	}
	if _, ok := err.(*DimensionError); !ok {
		t.Fatalf("got %T, want *DimensionError", err)
	}
}

func TestTraceAllBackground(t *testing.T) {
	img := newBinaryImage(4, 4, func(x, y int) bool { return false })
	segs, err := Trace(img)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(segs) != 0 {
		t.Errorf("got %d segments for an all-background image, want 0", len(segs))
	}
}

func TestTraceAllForegroundHasBorderOnly(t *testing.T) {
	img := newBinaryImage(3, 3, func(x, y int) bool { return true })
	segs, err := Trace(img)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	// An all-foreground image has no interior contour, only the image
	// border closing the single outer ring.
	if len(segs) == 0 {
		t.Fatal("expected border segments for an all-foreground image")
	}
}

func TestTraceSinglePixelSquare(t *testing.T) {
	// A single foreground pixel in the middle of a background field
	// traces a closed square with exactly 4 segments.
	img := newBinaryImage(4, 4, func(x, y int) bool { return x == 1 && y == 1 })
	segs, err := Trace(img)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}

	asm := NewAssembler(nil)
	for _, s := range segs {
		asm.Add(s)
	}
	rings := asm.Closed()
	if len(rings) != 1 {
		t.Fatalf("got %d closed rings, want 1", len(rings))
	}
	if rings[0].IsHole() {
		t.Error("a single foreground pixel's ring should not be a hole")
	}
}

func TestCaseSegmentsSaddleEmitsTwoDiagonalSegments(t *testing.T) {
	q := QuadCase{TL: false, TR: true, BR: false, BL: true}
	segs := caseSegments(q, 0, 0, 10)
	if len(segs) != 2 {
		t.Fatalf("got %d segments for a saddle case, want 2", len(segs))
	}
}

func TestCaseSegmentsEmptyAndFull(t *testing.T) {
	empty := caseSegments(QuadCase{}, 0, 0, 10)
	if len(empty) != 0 {
		t.Errorf("all-background cell produced %d segments, want 0", len(empty))
	}
	full := caseSegments(QuadCase{TL: true, TR: true, BR: true, BL: true}, 0, 0, 10)
	if len(full) != 0 {
		t.Errorf("all-foreground cell produced %d segments, want 0", len(full))
	}
}
