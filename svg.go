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
	"strconv"
	"strings"
)

// SVGPath serializes the contours as SVG path commands, using only
// "M x y", "H x" and "V y".  Since contours are rectilinear, each vertex
// after the first changes exactly one coordinate, selecting between H and
// V.  If closePaths is true, each contour ends with "Z"; otherwise the
// final edge back to the start point is left implicit.  Contours are
// concatenated without separators since each command is delimited by its
// leading letter.
func (cs Contours) SVGPath(closePaths bool) string {
	var b strings.Builder
	for _, c := range cs {
		v := c.Vertices
		if len(v) == 0 {
			continue
		}
		b.WriteByte('M')
		b.WriteString(strconv.Itoa(v[0].X))
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(v[0].Y))
		prev := v[0]
		for _, p := range v[1:] {
			if p.Y == prev.Y {
				b.WriteByte('H')
				b.WriteString(strconv.Itoa(p.X))
			} else {
				b.WriteByte('V')
				b.WriteString(strconv.Itoa(p.Y))
			}
			prev = p
		}
		if closePaths {
			b.WriteByte('Z')
		}
	}
	return b.String()
}
