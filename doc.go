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

// Package raster2stl turns a thresholded raster image into a watertight
// extruded solid, encoded as a binary STL triangle mesh.
//
// The pipeline runs in seven stages: binarize the image at a luminance
// threshold, trace cell-by-cell contour segments (marching squares),
// assemble segments into closed rings, classify rings as outer or hole
// by winding, nest rings into a containment tree, triangulate each
// outer-with-holes polygon by ear cutting, and finally extrude the flat
// triangles into lids and ribbons before writing them out as STL.
//
// Call [ImageToSTL] to run the whole pipeline in one step.
package raster2stl
