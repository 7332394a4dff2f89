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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestSVGPathEmpty(t *testing.T) {
	var cs Contours
	if got := cs.SVGPath(true); got != "" {
		t.Errorf("SVGPath of no contours = %q, want empty", got)
	}
}

func TestSVGPathCommands(t *testing.T) {
	cs := Contours{
		{
			Outline:  true,
			Vertices: []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}},
		},
		{
			Vertices: []Point{{1, 1}, {1, 2}, {2, 2}, {2, 1}},
		},
	}

	if got, want := cs.SVGPath(false), "M0 0H2V2H0M1 1V2H2V1"; got != want {
		t.Errorf("SVGPath(false) = %q, want %q", got, want)
	}
	if got, want := cs.SVGPath(true), "M0 0H2V2H0ZM1 1V2H2V1Z"; got != want {
		t.Errorf("SVGPath(true) = %q, want %q", got, want)
	}
}

func TestGeomPath(t *testing.T) {
	bits := [][]int{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	cs, err := Trace(bits)
	if err != nil {
		t.Fatal(err)
	}
	d := cs.Path()

	// three unit squares, each MoveTo + 3 LineTo + Close
	var wantCmds []path.Command
	for range 3 {
		wantCmds = append(wantCmds,
			path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose)
	}
	if diff := cmp.Diff(wantCmds, d.Cmds); diff != "" {
		t.Errorf("commands (-want +got):\n%s", diff)
	}

	wantCoords := []vec.Vec2{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2},
		{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 3}, {X: 2, Y: 3},
	}
	if diff := cmp.Diff(wantCoords, d.Coords); diff != "" {
		t.Errorf("coordinates (-want +got):\n%s", diff)
	}
}
