/*
 * Pentomino - a solver and tiling enumerator for the twelve free pentominoes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package shape generates, for each of the twelve pentominoes, the set
// of distinct orientations (flip x rotation) as normalized coordinate
// lists. The canonical 5x5 matrices below and the transform/normalize
// procedure are a direct port of the reference solver's shape generator.
package shape

import "github.com/frankkopp/pentomino/internal/piece"

// Coord is a single cell of a shape, relative to the shape's bounding
// box. A Shape's first Coord is always its row-major-earliest cell,
// which becomes the anchor of every placement derived from the shape.
type Coord struct {
	X, Y int
}

// Shape is a pentomino orientation: five coordinates with min X and
// min Y both 0, first element = row-major-earliest cell.
type Shape []Coord

type matrix [5][5]bool

// canonical pentomino blocks, one 5x5 boolean matrix per piece, in
// piece.Piece index order (O,P,Q,R,S,T,U,V,W,X,Y,Z).
var blocks = [piece.NumPieces]matrix{
	// O (I)
	{
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, false, false, false, false},
	},
	// P
	{
		{true, true, false, false, false},
		{true, true, false, false, false},
		{true, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// Q (L)
	{
		{true, true, false, false, false},
		{false, true, false, false, false},
		{false, true, false, false, false},
		{false, true, false, false, false},
		{false, false, false, false, false},
	},
	// R (F)
	{
		{false, true, true, false, false},
		{true, true, false, false, false},
		{false, true, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// S (N)
	{
		{false, false, true, true, false},
		{true, true, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// T
	{
		{true, true, true, false, false},
		{false, true, false, false, false},
		{false, true, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// U
	{
		{true, false, true, false, false},
		{true, true, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// V
	{
		{true, false, false, false, false},
		{true, false, false, false, false},
		{true, true, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// W
	{
		{true, false, false, false, false},
		{true, true, false, false, false},
		{false, true, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// X
	{
		{false, true, false, false, false},
		{true, true, true, false, false},
		{false, true, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// Y
	{
		{false, false, true, false, false},
		{true, true, true, true, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
	// Z
	{
		{true, true, false, false, false},
		{false, true, false, false, false},
		{false, true, true, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	},
}

func (m matrix) flip() matrix {
	var ret matrix
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			ret[y][4-x] = m[y][x]
		}
	}
	return ret
}

func (m matrix) rot90() matrix {
	var ret matrix
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			ret[x][4-y] = m[y][x]
		}
	}
	return ret
}

func (m matrix) transform(flip bool, rot int) matrix {
	ret := m
	if flip {
		ret = ret.flip()
	}
	for i := 0; i < rot%4; i++ {
		ret = ret.rot90()
	}
	return ret
}

// normalizedCoordinates extracts the set cells in row-major order
// (y outer, x inner — the scan order that guarantees the first element
// is the shape's anchor) and translates them so min X = min Y = 0.
func (m matrix) normalizedCoordinates() Shape {
	var coords Shape
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if m[y][x] {
				coords = append(coords, Coord{X: x, Y: y})
			}
		}
	}
	xMin, yMin := coords[0].X, coords[0].Y
	for _, c := range coords {
		xMin = min(xMin, c.X)
		yMin = min(yMin, c.Y)
	}
	for i := range coords {
		coords[i].X -= xMin
		coords[i].Y -= yMin
	}
	return coords
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func equal(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Generate returns the de-duplicated set of distinct orientations of p
// under the eight combinations of {no-flip, horizontal-flip} x
// {0,90,180,270}. Flip is tried before rotation, and is the outer loop,
// matching the reference generator's iteration order; this doesn't
// affect the resulting set, only the order shapes are discovered in.
func Generate(p piece.Piece) []Shape {
	block := blocks[p]
	var shapes []Shape
	for _, flip := range [2]bool{false, true} {
		for rot := 0; rot < 4; rot++ {
			s := block.transform(flip, rot).normalizedCoordinates()
			found := false
			for _, existing := range shapes {
				if equal(existing, s) {
					found = true
					break
				}
			}
			if !found {
				shapes = append(shapes, s)
			}
		}
	}
	return shapes
}

// GenerateAll returns Generate(p) for every piece, in piece.Piece index
// order. The total shape count across all twelve pieces is 63.
func GenerateAll() [piece.NumPieces][]Shape {
	var all [piece.NumPieces][]Shape
	for _, p := range piece.All() {
		all[p] = Generate(p)
	}
	return all
}

// Bounds returns the bounding box (maxX, maxY) of a shape; shapes are
// already normalized to minX=minY=0 so these double as width-1,height-1.
func (s Shape) Bounds() (maxX, maxY int) {
	for _, c := range s {
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
