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

var shapeCases = []TestCase{
	{
		Name: "diagonal",
		Bits: [][]int{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H1V1H0ZM1 1H2V2H1ZM2 2H3V3H2Z",
	},
	{
		Name: "diagonal_open",
		Bits: [][]int{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		ClosePaths: false,
		Want:       "M0 0H1V1H0M1 1H2V2H1M2 2H3V3H2",
	},
	{
		Name: "plus",
		Bits: [][]int{
			{0, 1, 0},
			{1, 1, 1},
			{0, 1, 0},
		},
		ClosePaths: true,
		Want:       "M1 0H2V1H3V2H2V3H1V2H0V1H1Z",
	},
	{
		// concave shape whose notch opens to the top edge; the notch
		// is not a hole
		Name: "u_shape",
		Bits: [][]int{
			{1, 0, 1},
			{1, 1, 1},
		},
		ClosePaths: true,
		Want:       "M0 0H1V1H2V0H3V2H0Z",
	},
	{
		Name: "u_shape_open",
		Bits: [][]int{
			{1, 0, 1},
			{1, 1, 1},
		},
		ClosePaths: false,
		Want:       "M0 0H1V1H2V0H3V2H0",
	},
}
