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

// Command genpdf generates reference drawings for the trace test cases.
// Each PDF shows the input raster in light gray with the traced contours
// filled on top, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/contour"
	"seehuhn.de/go/contour/testcases"
)

const refDir = "testdata/reference"

// scale enlarges the grid-corner coordinate system; one raster cell
// becomes a 16×16 point square on the page.
const scale = 16.0

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	height := len(tc.Bits)
	width := 0
	if height > 0 {
		width = len(tc.Bits[0])
	}

	paper := &pdf.Rectangle{
		URx: float64(width) * scale,
		URy: float64(height) * scale,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; grid coordinates assume top-left.
	// Apply scaling and a Y-axis flip.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, float64(height) * scale})

	// input raster in light gray
	page.SetFillColor(color.DeviceGray(0.8))
	for y, row := range tc.Bits {
		for x, v := range row {
			if v == 1 {
				page.Rectangle(float64(x), float64(y), 1, 1)
			}
		}
	}
	page.Fill()

	cs, err := contour.Trace(tc.Bits)
	if err != nil {
		return err
	}

	// traced contours in dark gray; holes cancel under the nonzero
	// winding rule because they are traced counterclockwise
	page.SetFillColor(color.DeviceGray(0.3))
	for _, c := range cs {
		page.MoveTo(float64(c.Vertices[0].X), float64(c.Vertices[0].Y))
		for _, p := range c.Vertices[1:] {
			page.LineTo(float64(p.X), float64(p.Y))
		}
		page.ClosePath()
	}
	page.Fill()

	return page.Close()
}
