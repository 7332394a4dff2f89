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

// scan drives the whole extraction: it visits every interior cell in
// row-major order and keeps two nesting counters, the number of open
// outlines and of open holes at the current position.  A foreground cell
// outside any open outline (ol == hl) seeds a new outline; a background
// cell inside one (ol > hl) seeds a new hole.  Cells already crossed by a
// contour carry a code other than ±1 and are never seeded again.
//
// Both counters reset at each row start: a contour's vertical extent
// already determines which rows see it, so only crossing codes met
// earlier in the same row matter.  After any seeding, the cell's
// accumulated code adjusts the counter matching the cell's sign.
func (g *grid) scan() Contours {
	var all Contours
	for y := 1; y <= g.h; y++ {
		ol, hl := 0, 0
		for x := 1; x <= g.w; x++ {
			if ol == hl && g.at(x, y) == 1 {
				all = append(all, g.trace(&outlinePolarity, x, y))
			} else if ol > hl && g.at(x, y) == -1 {
				all = append(all, g.trace(&holePolarity, x, y))
			}

			v := g.at(x, y)
			switch levelShift(v) {
			case +1:
				if v > 0 {
					ol++
				} else {
					hl++
				}
			case -1:
				if v > 0 {
					ol--
				} else {
					hl--
				}
			}
		}
	}
	return all
}
