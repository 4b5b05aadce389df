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

// Package prune implements the two placement-rejection predicates that
// the Optimized solver variants bake into their placement tables at
// construction time: a candidate placement is discarded up front if it
// cuts off a board corner, or if it seals off a cell that no five-cell
// piece could ever reach afterwards.
package prune

import "github.com/frankkopp/pentomino/internal/board"

// Checker holds the edge and unit-step bitboards for a fixed (rows,cols)
// board, precomputed once so CornerRejected and HoleRejected are pure
// bitwise tests against a candidate placement mask.
type Checker struct {
	edges [4]board.Bitboard // top, left, bottom, right
	unitX [2]board.Bitboard // {cell+right, cell+2right}
	unitY [2]board.Bitboard // {cell+down, cell+2down}
}

// NewChecker builds a Checker for a board with the given row and column
// count.
func NewChecker(rows, cols int) Checker {
	var edgeX, edgeY board.Bitboard
	for i := 0; i < cols; i++ {
		edgeX |= board.Bitboard(1) << uint(i)
	}
	for i := 0; i < rows; i++ {
		edgeY |= board.Bitboard(1) << uint(i*cols)
	}
	return Checker{
		edges: [4]board.Bitboard{
			edgeX,
			edgeY,
			edgeX << uint((rows-1)*cols),
			edgeY << uint(cols-1),
		},
		unitX: [2]board.Bitboard{1 | (1 << 1), 1 | (1 << 2)},
		unitY: [2]board.Bitboard{1 | (board.Bitboard(1) << uint(cols)), 1 | (board.Bitboard(1) << uint(cols*2))},
	}
}

// CornerRejected reports whether the placement mask u touches two
// adjacent board edges without covering the corner cell they share —
// a placement that would wall off that corner so nothing can ever
// reach it.
func (c Checker) CornerRejected(u board.Bitboard) bool {
	cycle := [5]int{0, 1, 2, 3, 0}
	for i := 0; i < 4; i++ {
		e0, e1 := c.edges[cycle[i]], c.edges[cycle[i+1]]
		if e0&u != 0 && e1&u != 0 && (e0&e1)&u == 0 {
			return true
		}
	}
	return false
}

// HoleRejected reports whether u covers an edge's cells in a pattern
// that leaves a single cell isolated along that edge: a run of covered
// edge cells whose length, measured in the unit-step rulers below,
// is a multiple of the 2-cell step but not the 1-cell step — the
// signature of a single empty cell pinched between covered ones.
func (c Checker) HoleRejected(u board.Bitboard) bool {
	units := [4][2]board.Bitboard{c.unitX, c.unitY, c.unitX, c.unitY}
	for i, edge := range c.edges {
		masked := u & edge
		if masked != 0 && masked%units[i][0] != 0 && masked%units[i][1] == 0 {
			return true
		}
	}
	return false
}

// holePair is a precomputed (full, neighbors) check for one board cell:
// Full is that cell's bit plus its in-bounds orthogonal neighbors, and
// Neighbors is just the neighbors. next&Full==Neighbors means the cell
// itself is still empty while every one of its neighbors is occupied —
// a cell that no remaining piece can ever cover.
type holePair struct {
	Full, Neighbors board.Bitboard
}

// HoleCheckers maps a forced-anchor target cell to the two neighboring
// cells most likely to be sealed off by a placement anchored there —
// the next cell (target+1) and the cell one row down and one column to
// the left (target+cols-1), both taken modulo the board size.
type HoleCheckers [64][2]holePair

// BuildHoleCheckers precomputes HoleCheckers for a board with the
// given row and column count.
func BuildHoleCheckers(rows, cols int) HoleCheckers {
	n := rows * cols
	cells := make([]holePair, n)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var neighbors board.Bitboard
			type delta struct{ dx, dy int }
			for _, d := range []delta{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := x+d.dx, y+d.dy
				if nx >= 0 && nx < cols && ny >= 0 && ny < rows {
					neighbors |= board.Bitboard(1) << uint(nx+ny*cols)
				}
			}
			self := board.Bitboard(1) << uint(x+y*cols)
			cells[x+y*cols] = holePair{Full: neighbors | self, Neighbors: neighbors}
		}
	}
	var h HoleCheckers
	for i := 0; i < 64; i++ {
		if i >= n {
			continue
		}
		h[i][0] = cells[(i+1)%n]
		h[i][1] = cells[(i+cols-1)%n]
	}
	return h
}

// Seals reports whether, after placing a piece leaving the board in
// state next, the target cell's hole checks catch a newly-isolated
// cell.
func (h HoleCheckers) Seals(target int, next board.Bitboard) bool {
	for _, p := range h[target] {
		if next&p.Full == p.Neighbors {
			return true
		}
	}
	return false
}
