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

package testcases

var nestedCases = []TestCase{
	{
		Name: "ring",
		Bits: [][]int{
			{1, 1, 1},
			{1, 0, 1},
			{1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H3V3H0ZM1 1V2H2V1Z",
	},
	{
		Name: "ring_5x5",
		Bits: [][]int{
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 0, 1, 1},
			{1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H5V5H0ZM2 2V3H3V2Z",
	},
	{
		// four disconnected bars around an open center (no hole,
		// the corners leak) next to a closed ring with a nested
		// pixel: outline inside hole inside outline
		Name: "mixed_scene",
		Bits: [][]int{
			{0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1},
			{0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1},
		},
		ClosePaths: false,
		Want:       "M1 0H4V1H1M6 0H11V5H6M0 1H1V4H0M4 1H5V4H4M7 1V4H10V1M8 2H9V3H8M1 4H4V5H1",
	},
	{
		Name: "mixed_scene_closed",
		Bits: [][]int{
			{0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 1},
			{1, 0, 0, 0, 1, 0, 1, 0, 0, 0, 1},
			{0, 1, 1, 1, 0, 0, 1, 1, 1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M1 0H4V1H1ZM6 0H11V5H6ZM0 1H1V4H0ZM4 1H5V4H4ZM7 1V4H10V1ZM8 2H9V3H8ZM1 4H4V5H1Z",
	},
}
