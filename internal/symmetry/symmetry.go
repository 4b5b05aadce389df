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

// Package symmetry reflects and transposes a completed solution's
// piece array in place on the bitboard, without ever rendering it to a
// 2-D grid. Every transform is a sequence of delta-swaps: a classic
// bit-permutation primitive that moves a whole row or column of bits
// in one shift-xor-mask step instead of walking cell by cell.
package symmetry

import (
	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
)

// Swap is one delta-swap step: bits selected by Mask are exchanged
// with the bits Delta positions away.
type Swap struct {
	Mask  uint64
	Delta uint
}

// DeltaSwap applies one delta-swap step to x.
func DeltaSwap(x uint64, s Swap) uint64 {
	t := (x ^ (x >> s.Delta)) & s.Mask
	return x ^ t ^ (t << s.Delta)
}

// GenerateSwaps builds the delta-swap sequence that reverses the order
// of `length` equal-size groups of bits spaced `steps` apart, each
// group being `unit` wide. Folding a value through the returned
// sequence in order performs the full reversal; this is the classic
// recursive bit-reversal-permutation construction, unrolled into an
// explicit step list so it can be applied without recursion at
// transform time.
func GenerateSwaps(unit uint64, length, steps int) []Swap {
	type frame struct {
		indices []int
		length  int
	}
	var swaps []Swap
	stack := []frame{{indices: []int{0}, length: length}}
	for {
		top := stack[len(stack)-1]
		if top.length < 2 {
			break
		}
		var mask uint64
		for _, i := range top.indices {
			for j := 0; j < top.length/2; j++ {
				mask |= unit << uint((i+j)*steps)
			}
		}
		swaps = append(swaps, Swap{Mask: mask, Delta: uint((top.length + 1) / 2 * steps)})
		next := make([]int, 0, len(top.indices)*2)
		for _, i := range top.indices {
			next = append(next, i, i+(top.length+1)/2)
		}
		stack = append(stack, frame{indices: next, length: top.length / 2})
	}
	for i, j := 0, len(swaps)-1; i < j; i, j = i+1, j-1 {
		swaps[i], swaps[j] = swaps[j], swaps[i]
	}
	return swaps
}

func fold(x uint64, swaps []Swap) uint64 {
	for _, s := range swaps {
		x = DeltaSwap(x, s)
	}
	return x
}

// Transformer holds the precomputed swap sequences that flip a
// solution's pieces horizontally or vertically on a board with a fixed
// row and column count.
type Transformer struct {
	xSwaps []Swap
	ySwaps []Swap
}

// NewTransformer builds a Transformer for a board with the given row
// and column count.
func NewTransformer(rows, cols int) Transformer {
	var xUnit uint64
	for i := 0; i < rows; i++ {
		xUnit |= uint64(1) << uint(cols*i)
	}
	var yUnit uint64
	for i := 0; i < cols; i++ {
		yUnit |= uint64(1) << uint(i)
	}
	return Transformer{
		xSwaps: GenerateSwaps(xUnit, cols, 1),
		ySwaps: GenerateSwaps(yUnit, rows, cols),
	}
}

// FlipX mirrors every piece's placement left-to-right across the
// board's columns.
func (t Transformer) FlipX(pieces piece.Array) piece.Array {
	var out piece.Array
	for i, bb := range pieces {
		out[i] = board.Bitboard(fold(uint64(bb), t.xSwaps))
	}
	return out
}

// FlipY mirrors every piece's placement top-to-bottom across the
// board's rows.
func (t Transformer) FlipY(pieces piece.Array) piece.Array {
	var out piece.Array
	for i, bb := range pieces {
		out[i] = board.Bitboard(fold(uint64(bb), t.ySwaps))
	}
	return out
}

// transposeSwaps are the three fixed delta-swap steps that transpose
// an 8-column board's bit layout — the only board size in this module
// with rows == cols, so these constants are not parameterized.
var transposeSwaps = []Swap{
	{Mask: 0x00AA00AA00AA00AA, Delta: 7},
	{Mask: 0x0000CCCC0000CCCC, Delta: 14},
	{Mask: 0x00000000F0F0F0F0, Delta: 28},
}

// Transpose mirrors every piece's placement across the board's main
// diagonal. Valid only for an 8x8 board.
func Transpose(pieces piece.Array) piece.Array {
	var out piece.Array
	for i, bb := range pieces {
		out[i] = board.Bitboard(fold(uint64(bb), transposeSwaps))
	}
	return out
}
