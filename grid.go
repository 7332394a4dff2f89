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

import "fmt"

// InvalidDimensionsError indicates that the input raster is empty or not
// rectangular.
type InvalidDimensionsError struct {
	Height, Width int

	// Row is the index of the first row whose length differs from the
	// width of row 0, or -1 if the raster is empty.  RowLen is the
	// length of that row.
	Row, RowLen int
}

func (e *InvalidDimensionsError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("contour: raster is not rectangular (row %d has length %d, want %d)",
			e.Row, e.RowLen, e.Width)
	}
	return fmt.Sprintf("contour: invalid raster dimensions %d×%d", e.Width, e.Height)
}

// InvalidCellValueError indicates a cell value outside the accepted
// foreground/background domain {-1, 0, 1}.
type InvalidCellValueError struct {
	X, Y  int // cell position in raster coordinates
	Value int
}

func (e *InvalidCellValueError) Error() string {
	return fmt.Sprintf("contour: invalid cell value %d at (%d, %d)", e.Value, e.X, e.Y)
}

// grid holds the classified cells of one tracing run, surrounded by a
// one-cell border of neutral cells so that lookahead never reads outside
// the slice.  Interior cells start at +1 (foreground) or -1 (background)
// and accumulate crossing codes as contours pass through them; border
// cells stay zero and are never written to.
type grid struct {
	w, h  int    // interior dimensions
	cells []int8 // (h+2)×(w+2) cells in row-major order
}

// newGrid validates the raster and builds the padded cell array.
// Validation is complete before any cell is classified, so errors never
// leave a partially traced grid behind.
func newGrid(bits [][]int) (*grid, error) {
	h := len(bits)
	if h == 0 {
		return nil, &InvalidDimensionsError{Row: -1}
	}
	w := len(bits[0])
	if w == 0 {
		return nil, &InvalidDimensionsError{Height: h, Row: -1}
	}
	for y, row := range bits {
		if len(row) != w {
			return nil, &InvalidDimensionsError{Height: h, Width: w, Row: y, RowLen: len(row)}
		}
		for x, v := range row {
			if v < -1 || v > 1 {
				return nil, &InvalidCellValueError{X: x, Y: y, Value: v}
			}
		}
	}

	g := &grid{
		w:     w,
		h:     h,
		cells: make([]int8, (h+2)*(w+2)),
	}
	for y, row := range bits {
		for x, v := range row {
			if v == 1 {
				g.set(x+1, y+1, 1)
			} else {
				g.set(x+1, y+1, -1)
			}
		}
	}
	return g, nil
}

// at returns the cell value at padded coordinates (x, y).
func (g *grid) at(x, y int) int8 {
	return g.cells[y*(g.w+2)+x]
}

func (g *grid) set(x, y int, v int8) {
	g.cells[y*(g.w+2)+x] = v
}

// add accumulates a crossing weight into a cell.  The sign of the cell is
// preserved by construction of the weight tables.
func (g *grid) add(x, y int, w int8) {
	g.cells[y*(g.w+2)+x] += w
}
