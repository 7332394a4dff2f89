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

// Package contour converts binary rasters into closed rectilinear contours.
//
// The tracer follows region boundaries using Theo Pavlidis' algorithm
// (4-connected): outlines of foreground regions are traced in clockwise
// direction, holes inside them in counterclockwise direction.  Results are
// available as vertex lists, as SVG path commands, or as a geometry path
// for further processing.
package contour

// Point is a vertex in grid-corner coordinates.  A raster of width W and
// height H has corners in the range (0,0) to (W,H), with the y axis
// pointing down.
type Point struct {
	X, Y int
}

// Contour is one closed boundary between foreground and background.  The
// vertex list is ordered and implicitly closed: the final edge connects
// the last vertex back to the first.  Consecutive vertices always differ
// in exactly one coordinate.
type Contour struct {
	// Outline is true for the boundary of a foreground region (traced
	// clockwise) and false for a hole inside one (traced
	// counterclockwise).
	Outline bool

	// Vertices are the corners of the contour polygon, in trace order.
	Vertices []Point
}

// SignedArea returns the area enclosed by the contour, computed with the
// shoelace formula.  With the y axis pointing down, clockwise contours
// (outlines) have positive area and counterclockwise contours (holes)
// have negative area.
func (c *Contour) SignedArea() int {
	sum := 0
	n := len(c.Vertices)
	for i, p := range c.Vertices {
		q := c.Vertices[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Contours is a list of contours in discovery order.  The raster is
// scanned top-to-bottom, left-to-right, so an outline always appears
// before any hole nested inside it.
type Contours []*Contour

// Trace extracts all contours from a raster of cell values.  Each row of
// bits must have the same positive length.  The value 1 marks a
// foreground cell; 0 and -1 mark background cells.  Other values cause an
// [*InvalidCellValueError], and malformed dimensions cause an
// [*InvalidDimensionsError]; validation happens before any tracing, so a
// returned error implies no work was done.
//
// The input is not modified, and no state persists between invocations.
func Trace(bits [][]int) (Contours, error) {
	g, err := newGrid(bits)
	if err != nil {
		return nil, err
	}
	return g.scan(), nil
}

// BitsToPaths traces all contours in a raster and serializes them as SVG
// path commands.  This is shorthand for [Trace] followed by
// [Contours.SVGPath].
func BitsToPaths(bits [][]int, closePaths bool) (string, error) {
	cs, err := Trace(bits)
	if err != nil {
		return "", err
	}
	return cs.SVGPath(closePaths), nil
}
