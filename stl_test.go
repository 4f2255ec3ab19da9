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
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func TestWriteSTLHeaderAndCount(t *testing.T) {
	tris := []Triangle{
		{
			A: Vertex3{X: 0, Y: 0, Z: 0},
			B: Vertex3{X: 1, Y: 0, Z: 0},
			C: Vertex3{X: 0, Y: 1, Z: 0},
		},
	}

	var buf bytes.Buffer
	if err := WriteSTL(&buf, tris); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	b := buf.Bytes()
	wantLen := stlHeaderSize + 4 + len(tris)*stlRecordSize
	if len(b) != wantLen {
		t.Fatalf("got %d bytes, want %d", len(b), wantLen)
	}

	count := binary.LittleEndian.Uint32(b[stlHeaderSize : stlHeaderSize+4])
	if count != uint32(len(tris)) {
		t.Errorf("triangle count = %d, want %d", count, len(tris))
	}
}

func TestWriteSTLRecordLayout(t *testing.T) {
	tri := Triangle{
		A: Vertex3{X: 1, Y: 2, Z: 3},
		B: Vertex3{X: 4, Y: 5, Z: 6},
		C: Vertex3{X: 7, Y: 8, Z: 9},
	}

	var buf bytes.Buffer
	if err := WriteSTL(&buf, []Triangle{tri}); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	rec := buf.Bytes()[stlHeaderSize+4:]
	if len(rec) != stlRecordSize {
		t.Fatalf("got %d bytes of record data, want %d", len(rec), stlRecordSize)
	}

	// Normal (bytes 0:12) must be zeroed.
	for i := 0; i < 12; i++ {
		if rec[i] != 0 {
			t.Fatalf("normal byte %d = %d, want 0", i, rec[i])
		}
	}

	want := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i, w := range want {
		off := 12 + i*4
		bits := binary.LittleEndian.Uint32(rec[off : off+4])
		got := math.Float32frombits(bits)
		if got != w {
			t.Errorf("vertex float %d = %v, want %v", i, got, w)
		}
	}

	// Attribute byte count (bytes 48:50) must be zeroed.
	if rec[48] != 0 || rec[49] != 0 {
		t.Error("attribute byte count should be zeroed")
	}
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, nil); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	if got, want := buf.Len(), stlHeaderSize+4; got != want {
		t.Errorf("got %d bytes for an empty mesh, want %d", got, want)
	}
}
