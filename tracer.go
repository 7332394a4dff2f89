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

// polarity bundles everything that distinguishes outline tracing from
// hole tracing: the matching cell sign, the rotation direction, the
// lookahead offsets, the crossing-weight table, and the per-heading
// corner offsets for emitted vertices.  The tracer itself is written
// once and parameterized by one of the two values below.
type polarity struct {
	outline bool

	// start is the heading at the seed cell, stop the heading that
	// ends the closing loop.
	start, stop int

	// turn is the default rotation in ring steps: +2 (clockwise) for
	// outlines, -2 (counterclockwise) for holes.
	turn int

	// diag is the ring offset of the forward diagonal checked and
	// moved to in the diagonal case: ahead-left for outlines,
	// ahead-right for holes.  innerA and innerB are the two offsets
	// checked in the inner-turn case; innerA is also the move.
	diag, innerA, innerB int

	// weights holds the crossing weight per cardinal heading.
	weights [8]int8

	// corners holds, per cardinal heading, the offset from the
	// tracer's cell to the vertex it emits.
	corners [8]Point
}

var outlinePolarity = polarity{
	outline: true,
	start:   east,
	stop:    north,
	turn:    2,
	diag:    7,
	innerA:  1,
	innerB:  2,
	weights: outlineWeights,
	corners: [8]Point{north: {-1, 0}, east: {-1, -1}, south: {0, -1}, west: {0, 0}},
}

var holePolarity = polarity{
	outline: false,
	start:   south,
	stop:    west,
	turn:    -2,
	diag:    1,
	innerA:  7,
	innerB:  6,
	weights: holeWeights,
	corners: [8]Point{north: {0, 0}, east: {-1, 0}, south: {-1, -1}, west: {0, -1}},
}

// matches reports whether a cell belongs to the material being traced:
// foreground for outlines, background for holes.
func (p *polarity) matches(v int8) bool {
	if p.outline {
		return v > 0
	}
	return v < 0
}

// corner returns the vertex emitted at padded cell (x, y) with heading h.
// The offsets already account for the grid border, so the result is in
// grid-corner coordinates.
func (p *polarity) corner(x, y, h int) Point {
	off := p.corners[h]
	return Point{X: x + off.X, Y: y + off.Y}
}

// trace follows one complete contour starting at the seed cell (sx, sy)
// and returns it sealed.  At each step the three lookahead cells decide,
// in strict priority order, between a diagonal move, a straight move, an
// inner turn and a dead-end turn.  Crossing codes accumulate into the
// grid as a side effect; they are what lets the scan cursor keep its
// nesting counters correct without re-scanning region interiors.
//
// Closure is structural: on a finite grid with a neutral border every
// region boundary is a cycle, so the loop always returns to the seed.
func (g *grid) trace(p *polarity, sx, sy int) *Contour {
	c := &Contour{Outline: p.outline}

	x, y := sx, sy
	h := p.start
	c.Vertices = append(c.Vertices, p.corner(x, y, h))

	for {
		// neighbor cell at ring offset k relative to the heading
		nb := func(k int) int8 {
			d := moore[rot(h, k)]
			return g.at(x+d.X, y+d.Y)
		}

		switch {
		case p.matches(nb(p.diag)) && p.matches(nb(0)):
			// diagonal: advance ahead-diagonally, turning away
			// from the default direction
			g.add(x, y, p.weights[h])
			d := moore[rot(h, p.diag)]
			x += d.X
			y += d.Y
			h = rot(h, -p.turn)
			c.Vertices = append(c.Vertices, p.corner(x, y, h))

		case p.matches(nb(0)):
			// straight: collinear continuation, no vertex
			g.add(x, y, p.weights[h])
			d := moore[h]
			x += d.X
			y += d.Y

		case p.matches(nb(p.innerA)) && p.matches(nb(p.innerB)):
			// inner turn: a concave corner needs two vertices,
			// one before and one after the diagonal move
			g.add(x, y, p.weights[h])
			h = rot(h, p.turn)
			g.add(x, y, p.weights[h])
			c.Vertices = append(c.Vertices, p.corner(x, y, h))
			h = rot(h, -p.turn)
			d := moore[rot(h, p.innerA)]
			x += d.X
			y += d.Y
			c.Vertices = append(c.Vertices, p.corner(x, y, h))

		default:
			// dead end: turn in place; repeated turns amount to a
			// U-turn on one-cell-wide material
			g.add(x, y, p.weights[h])
			h = rot(h, p.turn)
			c.Vertices = append(c.Vertices, p.corner(x, y, h))
		}

		if x == sx && y == sy && len(c.Vertices) > 2 {
			break
		}
	}

	// Back at the seed: rotate in place until the heading matches the
	// orientation after the contour's first move, accumulating the
	// final crossing codes.  The segment back to the first vertex is
	// implicit and not stored.
	for {
		g.add(x, y, p.weights[h])
		if h == p.stop {
			break
		}
		h = rot(h, p.turn)
		c.Vertices = append(c.Vertices, p.corner(x, y, h))
	}

	return c
}
