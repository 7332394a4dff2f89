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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromImageGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 3))
	for i := range 3 {
		img.SetGray(i, i, color.Gray{Y: 255})
	}

	bits := FromImage(img, color.Gray{Y: 255})
	want := [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	if diff := cmp.Diff(want, bits); diff != "" {
		t.Errorf("bits (-want +got):\n%s", diff)
	}

	got, err := ImageToPaths(img, color.Gray{Y: 255}, true)
	if err != nil {
		t.Fatal(err)
	}
	if want := "M0 0H1V1H0ZM1 1H2V2H1ZM2 2H3V3H2Z"; got != want {
		t.Errorf("ImageToPaths = %q, want %q", got, want)
	}
}

func TestFromImageRGBA(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 1, red)

	got, err := ImageToPaths(img, red, true)
	if err != nil {
		t.Fatal(err)
	}
	if want := "M1 1H2V2H1Z"; got != want {
		t.Errorf("ImageToPaths = %q, want %q", got, want)
	}
}

// TestFromImageOffset checks that a nonzero bounds origin does not shift
// the raster.
func TestFromImageOffset(t *testing.T) {
	img := image.NewGray(image.Rect(10, 20, 13, 23))
	img.SetGray(11, 21, color.Gray{Y: 1})

	bits := FromImage(img, color.Gray{Y: 1})
	want := [][]int{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	if diff := cmp.Diff(want, bits); diff != "" {
		t.Errorf("bits (-want +got):\n%s", diff)
	}
}
