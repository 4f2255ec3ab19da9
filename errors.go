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

import "fmt"

// DecodeError is returned when the input bytes are not a recognized
// PNG or JPEG image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("raster2stl: decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DimensionError is returned when the image has fewer than two pixels
// in either dimension; the contour tracer needs at least a 2x2 grid of
// pixels to form a cell.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("raster2stl: image dimensions %dx%d are too small, need at least 2x2", e.Width, e.Height)
}

// TriangulationFailed is returned when the ear-cut triangulator could
// not make progress after diagonal splitting. By construction the
// tracer and ring assembler never produce a self-intersecting polygon,
// so this indicates a logic error in an upstream stage rather than a
// malformed input image.
type TriangulationFailed struct {
	Reason string
}

func (e *TriangulationFailed) Error() string {
	return fmt.Sprintf("raster2stl: triangulation failed: %s", e.Reason)
}

// WriteError wraps an I/O failure reported by the STL sink.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("raster2stl: write stl: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
