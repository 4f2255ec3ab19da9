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
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/aurelien-rainone/assertgo"
)

const (
	stlHeaderSize   = 80
	stlRecordSize   = 50
	stlVertexFloats = 9 // 3 vertices * 3 components per triangle record
)

// WriteSTL serializes tris to w as binary STL: an 80-byte
// header, a little-endian uint32 triangle count, then one 50-byte
// record per triangle (a zeroed normal, three float32 vertices, and a
// zeroed attribute byte count). Errors from w are wrapped in
// [WriteError].
func WriteSTL(w io.Writer, tris []Triangle) error {
	bw := bufio.NewWriter(w)

	var header [stlHeaderSize]byte
	if _, err := bw.Write(header[:]); err != nil {
		return &WriteError{Err: err}
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(tris)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return &WriteError{Err: err}
	}

	var rec [stlRecordSize]byte
	for _, t := range tris {
		coords := [stlVertexFloats]float32{
			float32(t.A.X), float32(t.A.Y), float32(t.A.Z),
			float32(t.B.X), float32(t.B.Y), float32(t.B.Z),
			float32(t.C.X), float32(t.C.Y), float32(t.C.Z),
		}
		assert.True(len(coords) == stlVertexFloats, "triangle coordinate chunk must hold exactly 9 floats")

		// rec[0:12] is the facet normal, left zeroed: most STL
		// consumers recompute it from vertex winding.
		off := 12
		for _, c := range coords {
			binary.LittleEndian.PutUint32(rec[off:off+4], math.Float32bits(c))
			off += 4
		}
		rec[48], rec[49] = 0, 0

		if _, err := bw.Write(rec[:]); err != nil {
			return &WriteError{Err: err}
		}
	}

	if err := bw.Flush(); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
