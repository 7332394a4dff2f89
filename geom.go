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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path converts the contours into a geometry path with one closed subpath
// per contour, in grid-corner coordinates with the y axis pointing down.
// Outlines are clockwise and holes counterclockwise, so filling the path
// with the nonzero winding rule reproduces the traced raster.
func (cs Contours) Path() *path.Data {
	d := &path.Data{}
	for _, c := range cs {
		v := c.Vertices
		if len(v) == 0 {
			continue
		}
		d.MoveTo(vec.Vec2{X: float64(v[0].X), Y: float64(v[0].Y)})
		for _, p := range v[1:] {
			d.LineTo(vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
		}
		d.Close()
	}
	return d
}
