// seehuhn.de/go/contour - trace contours in binary rasters
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

package contour

import (
	"image"
	"image/color"
)

// FromImage classifies the pixels of an image into foreground and
// background, for use with [Trace].  A pixel is foreground exactly if its
// color equals fg (compared in RGBA space).  The image bounds may have a
// nonzero origin; the resulting raster is always indexed from (0, 0).
func FromImage(img image.Image, fg color.Color) [][]int {
	if g, ok := img.(*image.Gray); ok {
		return fromGray(g, color.GrayModel.Convert(fg).(color.Gray).Y)
	}

	fr, fgr, fb, fa := fg.RGBA()
	b := img.Bounds()
	bits := make([][]int, b.Dy())
	for y := range bits {
		row := make([]int, b.Dx())
		for x := range row {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if r == fr && g == fgr && bl == fb && a == fa {
				row[x] = 1
			}
		}
		bits[y] = row
	}
	return bits
}

// fromGray is the fast path for 8-bit grayscale images.
func fromGray(img *image.Gray, fg uint8) [][]int {
	b := img.Bounds()
	bits := make([][]int, b.Dy())
	for y := range bits {
		row := make([]int, b.Dx())
		base := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := range row {
			if img.Pix[base+x] == fg {
				row[x] = 1
			}
		}
		bits[y] = row
	}
	return bits
}

// ImageToPaths traces the contours of all pixels with color fg and
// serializes them as SVG path commands.  This is shorthand for
// [FromImage] followed by [BitsToPaths].
func ImageToPaths(img image.Image, fg color.Color, closePaths bool) (string, error) {
	return BitsToPaths(FromImage(img, fg), closePaths)
}
