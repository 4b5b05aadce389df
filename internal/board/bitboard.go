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

// Package board implements the Bitboard, a 64-bit cell set with one bit
// per board cell, and the Cell addressing scheme used throughout the
// solver: cell (x,y) on a board of cols columns is bit index x + y*cols.
package board

import "math/bits"

// Bitboard is a 64-bit set of board cells.
type Bitboard uint64

// Cell is the index of a single board cell, x + y*cols.
type Cell int

// Various constant bitboards.
const (
	Empty Bitboard = 0
	Full  Bitboard = ^Bitboard(0)
)

// NewCell returns the cell index for board coordinates (x,y) on a board
// with the given number of columns.
func NewCell(x, y, cols int) Cell {
	return Cell(x + y*cols)
}

// Bb returns a Bitboard with exactly this cell's bit set.
func (c Cell) Bb() Bitboard {
	return Bitboard(1) << uint(c)
}

// XY returns the (x,y) board coordinates of a cell given the board's
// column count.
func (c Cell) XY(cols int) (x, y int) {
	return int(c) % cols, int(c) / cols
}

// Has reports whether the given cell is set.
func (b Bitboard) Has(c Cell) bool {
	return b&c.Bb() != 0
}

// Set returns b with the given cell set.
func (b Bitboard) Set(c Cell) Bitboard {
	return b | c.Bb()
}

// PopCount returns the number of set cells.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// TrailingOnes returns the number of contiguous set bits starting at
// bit 0 — the index of the lowest-indexed empty cell, and therefore the
// forced anchor for the next placement during backtracking.
func (b Bitboard) TrailingOnes() int {
	return bits.TrailingZeros64(^uint64(b))
}

// TrailingZeros returns the index of the lowest set bit, i.e. the
// anchor cell of a 5-cell placement mask.
func (b Bitboard) TrailingZeros() int {
	return bits.TrailingZeros64(uint64(b))
}

// Mask returns a Bitboard with the low n bits set — the full-board mask
// for an n-cell board.
func Mask(n int) Bitboard {
	if n >= 64 {
		return Full
	}
	return Bitboard(1)<<uint(n) - 1
}
