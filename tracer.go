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

// QuadCase is the foreground status of a cell's four corners, in
// top-left, top-right, bottom-right, bottom-left order.
type QuadCase struct {
	TL, TR, BR, BL bool
}

// cellPoint returns one of the cell's nine reference points (indexed
// 0..8) in tracer coordinates. x, y are the cell's
// top-left pixel coordinates; hMinus1 is image height minus one, used
// to flip the y axis so that an outer ring's outward normal is +z
// after extrusion.
func cellPoint(i int, x, y, hMinus1 float64) Vertex {
	switch i {
	case 0:
		return Vertex{X: x, Y: hMinus1 - y}
	case 1:
		return Vertex{X: x + 0.5, Y: hMinus1 - y}
	case 2:
		return Vertex{X: x + 1, Y: hMinus1 - y}
	case 3:
		return Vertex{X: x, Y: hMinus1 - (y + 0.5)}
	case 4:
		return Vertex{X: x + 0.5, Y: hMinus1 - (y + 0.5)}
	case 5:
		return Vertex{X: x + 1, Y: hMinus1 - (y + 0.5)}
	case 6:
		return Vertex{X: x, Y: hMinus1 - (y + 1)}
	case 7:
		return Vertex{X: x + 0.5, Y: hMinus1 - (y + 1)}
	case 8:
		return Vertex{X: x + 1, Y: hMinus1 - (y + 1)}
	default:
		panic("cellPoint: index out of range 0..8")
	}
}

func cellSegment(a, b int, x, y, hMinus1 float64) Segment {
	return Segment{A: cellPoint(a, x, y, hMinus1), B: cellPoint(b, x, y, hMinus1)}
}

// caseSegments returns the 0, 1, or 2 segments for a single cell,
// directed so that foreground lies on the left of travel, per the
// 16-case marching-squares table.
func caseSegments(q QuadCase, x, y, hMinus1 float64) []Segment {
	s := func(a, b int) Segment { return cellSegment(a, b, x, y, hMinus1) }

	switch {
	case !q.TL && !q.TR && !q.BR && !q.BL:
		return nil
	case !q.TL && !q.TR && !q.BR && q.BL:
		return []Segment{s(7, 3)}
	case !q.TL && !q.TR && q.BR && !q.BL:
		return []Segment{s(5, 7)}
	case !q.TL && !q.TR && q.BR && q.BL:
		return []Segment{s(3, 5)}
	case !q.TL && q.TR && !q.BR && !q.BL:
		return []Segment{s(1, 5)}
	case !q.TL && q.TR && !q.BR && q.BL:
		return []Segment{s(1, 5), s(7, 3)}
	case !q.TL && q.TR && q.BR && !q.BL:
		return []Segment{s(1, 7)}
	case !q.TL && q.TR && q.BR && q.BL:
		return []Segment{s(1, 3)}
	case q.TL && !q.TR && !q.BR && !q.BL:
		return []Segment{s(3, 1)}
	case q.TL && !q.TR && !q.BR && q.BL:
		return []Segment{s(7, 1)}
	case q.TL && !q.TR && q.BR && !q.BL:
		return []Segment{s(3, 1), s(5, 7)}
	case q.TL && !q.TR && q.BR && q.BL:
		return []Segment{s(5, 1)}
	case q.TL && q.TR && !q.BR && !q.BL:
		return []Segment{s(3, 5)}
	case q.TL && q.TR && !q.BR && q.BL:
		return []Segment{s(7, 5)}
	case q.TL && q.TR && q.BR && !q.BL:
		return []Segment{s(3, 7)}
	default: // all foreground
		return nil
	}
}

// borderSegments appends the segments that close the outline along the
// image border for a cell that touches one or more edges.
func borderSegments(q QuadCase, top, right, bottom, left bool, x, y, hMinus1 float64) []Segment {
	var out []Segment
	s := func(a, b int) Segment { return cellSegment(a, b, x, y, hMinus1) }

	if top {
		if q.TL {
			out = append(out, s(1, 0))
		}
		if q.TR {
			out = append(out, s(2, 1))
		}
	}
	if right {
		if q.TR {
			out = append(out, s(5, 2))
		}
		if q.BR {
			out = append(out, s(8, 5))
		}
	}
	if bottom {
		if q.BR {
			out = append(out, s(7, 8))
		}
		if q.BL {
			out = append(out, s(6, 7))
		}
	}
	if left {
		if q.BL {
			out = append(out, s(3, 6))
		}
		if q.TL {
			out = append(out, s(0, 3))
		}
	}
	return out
}

// Trace runs the marching-squares contour tracer over the whole image,
// returning every emitted segment in cell-scan order (row-major). It
// returns a [DimensionError] if the image has fewer than 2 pixels in
// either dimension.
func Trace(img *BinaryImage) ([]Segment, error) {
	if img.Width < 2 || img.Height < 2 {
		return nil, &DimensionError{Width: img.Width, Height: img.Height}
	}

	cellsX := img.Width - 1
	cellsY := img.Height - 1
	hMinus1 := float64(img.Height - 1)

	var out []Segment
	for y := 0; y < cellsY; y++ {
		for x := 0; x < cellsX; x++ {
			q := QuadCase{
				TL: img.At(x, y),
				TR: img.At(x+1, y),
				BR: img.At(x+1, y+1),
				BL: img.At(x, y+1),
			}
			out = append(out, caseSegments(q, float64(x), float64(y), hMinus1)...)

			top := y == 0
			right := x == cellsX-1
			bottom := y == cellsY-1
			left := x == 0
			if top || right || bottom || left {
				out = append(out, borderSegments(q, top, right, bottom, left, float64(x), float64(y), hMinus1)...)
			}
		}
	}
	return out, nil
}
