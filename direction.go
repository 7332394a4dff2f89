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

// The tracer's orientation is an index into the Moore neighborhood ring
// below.  Even indices are the four cardinal headings; odd indices are
// the diagonals used only for lookahead and diagonal moves.  Rotating the
// heading by 90° advances the index by ±2 (mod 8).
const (
	north = 0
	east  = 2
	south = 4
	west  = 6
)

// moore lists the eight neighbor offsets clockwise, starting north.
// Index k relative to heading h addresses the neighbor in direction
// (h+k) mod 8, so k=0 is straight ahead, k=7 ahead-left, k=1
// ahead-right.
var moore = [8]Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// rot rotates a heading by the given number of ring steps.
func rot(h, by int) int {
	return (h + by) & 7
}

// Crossing weights, one per cardinal heading and polarity.  At every step
// the tracer adds the weight of its current heading to the cell it
// occupies; a single pass through a cell records up to two weights.  The
// scan cursor later classifies the accumulated code to track nesting.
var (
	outlineWeights = [8]int8{north: 1, east: 2, south: 4, west: 8}
	holeWeights    = [8]int8{north: -4, east: -8, south: -1, west: -2}
)

// levelShifts classifies accumulated crossing codes by magnitude: +1 for
// a rising crossing, -1 for a falling one.  All other codes have no
// bookkeeping effect.  The table is indexed by |code|; larger magnitudes
// (cells crossed more than twice) are neutral as well.
var levelShifts = [16]int8{
	2: +1, 4: +1, 10: +1, 12: +1,
	5: -1, 7: -1, 13: -1, 15: -1,
}

// levelShift returns the nesting-level adjustment for a cell code.
func levelShift(code int8) int {
	if code < 0 {
		code = -code
	}
	if int(code) >= len(levelShifts) {
		return 0
	}
	return int(levelShifts[code])
}
