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

import "image"

// BinaryImage is a W x H grid of foreground/background booleans
// produced by [Binarize]. true means foreground (dark).
type BinaryImage struct {
	Width, Height int
	fg            []bool
}

// At reports whether the pixel at (x, y) is foreground. x and y must
// be within bounds.
func (b *BinaryImage) At(x, y int) bool {
	return b.fg[y*b.Width+x]
}

func (b *BinaryImage) set(x, y int, v bool) {
	b.fg[y*b.Width+x] = v
}

// luminance computes the ITU-R BT.709 luma of a color, truncated to an
// 8-bit integer. Alpha is ignored.
func luminance(c image.Image, x, y int) uint8 {
	r, g, b, _ := nrgba(c, x, y)
	l := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	return uint8(l)
}

// nrgba extracts non-premultiplied 8-bit RGBA channels for a pixel.
func nrgba(img image.Image, x, y int) (r, g, b, a uint8) {
	col := img.At(x, y)
	nc := colorToNRGBA(col)
	return nc.R, nc.G, nc.B, nc.A
}

// Binarize thresholds img's luminance into a [BinaryImage]. A pixel is
// foreground iff its luminance is <= cfg.Threshold (or > cfg.Threshold
// when cfg.Invert is set).
func Binarize(img image.Image, cfg Config) *BinaryImage {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	out := &BinaryImage{Width: w, Height: h, fg: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			l := luminance(img, bounds.Min.X+x, bounds.Min.Y+y)
			fg := l <= cfg.Threshold
			if cfg.Invert {
				fg = l > cfg.Threshold
			}
			out.set(x, y, fg)
		}
	}
	return out
}

// Grayscale converts img to an 8-bit grayscale image using the same
// luminance formula as Binarize, for callers that want a threshold
// preview without committing to a cutoff.
func Grayscale(img image.Image) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			l := luminance(img, bounds.Min.X+x, bounds.Min.Y+y)
			out.SetGray(x, y, colorGray(l))
		}
	}
	return out
}
