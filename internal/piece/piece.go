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

// Package piece defines the twelve free pentominoes and their stable
// indices 0..11.
package piece

import (
	"fmt"

	"github.com/frankkopp/pentomino/internal/board"
)

// Piece identifies one of the twelve free pentominoes.
type Piece int

// The twelve pentominoes, in stable index order. X (the plus-shaped
// pentomino) is index 9 and is used as the symmetry-breaking seed piece
// by the Optimized solver variants.
const (
	O Piece = iota
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	NumPieces = 12
)

var labels = [NumPieces]string{"O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z"}

// String returns the single-letter label of the piece.
func (p Piece) String() string {
	if p < 0 || int(p) >= NumPieces {
		return "?"
	}
	return labels[p]
}

// Parse returns the Piece for a single-letter label, and false if the
// label is not one of O,P,Q,R,S,T,U,V,W,X,Y,Z.
func Parse(label string) (Piece, bool) {
	for i, l := range labels {
		if l == label {
			return Piece(i), true
		}
	}
	return 0, false
}

// All returns the twelve pieces in index order.
func All() [NumPieces]Piece {
	var all [NumPieces]Piece
	for i := range all {
		all[i] = Piece(i)
	}
	return all
}

// Array holds one placement mask per piece index — the representation
// a completed or in-progress solution is built from throughout the
// solver and store packages.
type Array [NumPieces]board.Bitboard

// Set is a 12-bit set of pieces, one bit per Piece index, used to track
// which pieces have already been placed during backtracking.
type Set uint16

// Full is a Set containing all twelve pieces.
const Full Set = (1 << NumPieces) - 1

// Has reports whether p is a member of the set.
func (s Set) Has(p Piece) bool {
	return s&(1<<uint(p)) != 0
}

// With returns s with p added.
func (s Set) With(p Piece) Set {
	return s | (1 << uint(p))
}

// Without returns s with p removed.
func (s Set) Without(p Piece) Set {
	return s &^ (1 << uint(p))
}

// String implements fmt.Stringer for diagnostics.
func (s Set) String() string {
	out := ""
	for i := 0; i < NumPieces; i++ {
		if s.Has(Piece(i)) {
			out += Piece(i).String()
		}
	}
	return fmt.Sprintf("{%s}", out)
}
