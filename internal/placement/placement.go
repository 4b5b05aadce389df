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

// Package placement precomputes, for a fixed board size, every legal
// way to lay a pentomino down such that its row-major-earliest cell
// lands on a given anchor. Every table here is built once at solver
// construction time and read only thereafter; the backtracking search
// itself never evaluates shape geometry.
package placement

import (
	"github.com/frankkopp/pentomino/internal/assert"
	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
	"github.com/frankkopp/pentomino/internal/prune"
	"github.com/frankkopp/pentomino/internal/shape"
)

// Placement is one legal way to lay piece Piece down, as a board mask.
type Placement struct {
	Piece piece.Piece
	Mask  board.Bitboard
}

// SmallTable maps an anchor cell and a piece to every legal placement
// of that piece whose row-major-earliest cell is the anchor.
type SmallTable [64][piece.NumPieces][]board.Bitboard

// BuildTable builds the small placement table for a board with the
// given row and column count. Unlike BuildLargeTable it applies no
// pruning: Simple and Default variants only test each candidate against
// the board occupancy at search time.
func BuildTable(rows, cols int) SmallTable {
	var table SmallTable
	n := rows * cols
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		for _, s := range shape.Generate(p) {
			w, h := s.Bounds()
			if w >= cols || h >= rows {
				continue
			}
			for oy := 0; oy <= rows-h-1; oy++ {
				for ox := 0; ox <= cols-w-1; ox++ {
					mask := maskOf(s, ox, oy, cols)
					anchor := mask.TrailingZeros()
					if anchor >= n {
						continue
					}
					table[anchor][p] = append(table[anchor][p], mask)
				}
			}
		}
	}
	return table
}

// PrunedSmallTable maps an anchor cell and a piece to every legal
// placement of that piece, already filtered by the corner and hole
// pruning predicates. It excludes the X piece, which the Optimized
// variants place only via the seeds from BuildXSeeds.
type PrunedSmallTable [64][piece.NumPieces][]board.Bitboard

// BuildPrunedSmallTable builds the pruned small placement table for a
// board with the given row and column count.
func BuildPrunedSmallTable(rows, cols int) PrunedSmallTable {
	var table PrunedSmallTable
	n := rows * cols
	checker := prune.NewChecker(rows, cols)
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		if p == piece.X {
			continue
		}
		for _, s := range shape.Generate(p) {
			w, h := s.Bounds()
			if w >= cols || h >= rows {
				continue
			}
			for oy := 0; oy <= rows-h-1; oy++ {
				for ox := 0; ox <= cols-w-1; ox++ {
					mask := maskOf(s, ox, oy, cols)
					if checker.CornerRejected(mask) || checker.HoleRejected(mask) {
						continue
					}
					anchor := mask.TrailingZeros()
					if anchor >= n {
						continue
					}
					table[anchor][p] = append(table[anchor][p], mask)
				}
			}
		}
	}
	return table
}

// LargeTable maps an anchor cell and a bitmask of already-placed pieces
// to every legal, pruning-filtered placement of a piece not yet in
// that set. It trades memory (64 x 4096 slices) for a search loop with
// no per-candidate piece-membership test.
type LargeTable [64][1 << piece.NumPieces][]Placement

// BuildLargeTable builds the large placement table for a board with
// the given row and column count, baking the corner and hole pruning
// predicates in at construction time. The X piece is excluded: the
// Optimized variants place X only via the precomputed seed set in
// BuildXSeeds, so it never appears as a candidate mid-search.
func BuildLargeTable(rows, cols int) LargeTable {
	var table LargeTable
	n := rows * cols
	checker := prune.NewChecker(rows, cols)
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		if p == piece.X {
			continue
		}
		for _, s := range shape.Generate(p) {
			w, h := s.Bounds()
			if w >= cols || h >= rows {
				continue
			}
			for oy := 0; oy <= rows-h-1; oy++ {
				for ox := 0; ox <= cols-w-1; ox++ {
					mask := maskOf(s, ox, oy, cols)
					if checker.CornerRejected(mask) || checker.HoleRejected(mask) {
						continue
					}
					anchor := mask.TrailingZeros()
					if anchor >= n {
						continue
					}
					placement := Placement{Piece: p, Mask: mask}
					for used := 0; used < (1 << piece.NumPieces); used++ {
						if used&(1<<uint(p)) == 0 {
							table[anchor][used] = append(table[anchor][used], placement)
						}
					}
				}
			}
		}
	}
	return table
}

// BuildXSeeds returns every legal placement of the X piece restricted
// to the board's upper-left quadrant, used by the Optimized variants
// to symmetry-break the outermost search step: any solution using an
// X placement outside this quadrant is a reflection of one that uses a
// seed from it, so only the seeds need to be tried.
func BuildXSeeds(rows, cols int) []board.Bitboard {
	var seeds []board.Bitboard
	for _, s := range shape.Generate(piece.X) {
		w, h := s.Bounds()
		if w >= cols || h >= rows {
			continue
		}
		maxOy := (rows - 1) / 2
		maxOx := (cols - 1) / 2
		for oy := 0; oy < maxOy && oy <= rows-h-1; oy++ {
			for ox := 0; ox < maxOx && ox <= cols-w-1; ox++ {
				offset := ox + oy*cols
				if offset <= 0 {
					continue
				}
				seeds = append(seeds, maskOf(s, ox, oy, cols))
			}
		}
	}
	return seeds
}

func maskOf(s shape.Shape, ox, oy, cols int) board.Bitboard {
	var mask board.Bitboard
	for _, c := range s {
		cell := board.NewCell(ox+c.X, oy+c.Y, cols)
		mask = mask.Set(cell)
	}
	if assert.DEBUG {
		assert.Assert(mask.PopCount() == 5, "placement mask covers %d cells, want 5", mask.PopCount())
	}
	return mask
}
