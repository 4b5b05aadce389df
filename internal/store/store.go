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

// Package store collects completed solutions during backtracking,
// either verbatim or deduplicated up to the board's reflection (and,
// for square boards, transposition) symmetry. Both stores key directly
// on a solution's piece.Array, never on a rendered board, so dedup
// never pays for a grid comparison.
package store

import (
	"sort"

	"github.com/frankkopp/pentomino/internal/piece"
	"github.com/frankkopp/pentomino/internal/symmetry"
)

// Store accumulates solutions found during a backtracking search and
// yields them once the search completes.
type Store interface {
	AddSolution(pieces piece.Array)
	Solutions() []piece.Array
}

// AllSolutionStore records every solution together with its full orbit
// of 4 under the board's reflection group (identity, flip-x, flip-y,
// 180-degree rotation), so a caller sees every geometric embedding of
// every distinct tiling.
type AllSolutionStore struct {
	transformer symmetry.Transformer
	solutions   map[piece.Array]struct{}
}

// NewAllSolutionStore returns an empty AllSolutionStore for the given
// board transformer.
func NewAllSolutionStore(t symmetry.Transformer) *AllSolutionStore {
	return &AllSolutionStore{transformer: t, solutions: make(map[piece.Array]struct{})}
}

// AddSolution records pieces and its reflection orbit.
func (s *AllSolutionStore) AddSolution(pieces piece.Array) {
	s.solutions[pieces] = struct{}{}
	fx := s.transformer.FlipX(pieces)
	s.solutions[fx] = struct{}{}
	fy := s.transformer.FlipY(fx)
	s.solutions[fy] = struct{}{}
	fx2 := s.transformer.FlipX(fy)
	s.solutions[fx2] = struct{}{}
}

// Solutions returns every recorded solution, in a stable order.
func (s *AllSolutionStore) Solutions() []piece.Array {
	out := make([]piece.Array, 0, len(s.solutions))
	for p := range s.solutions {
		out = append(out, p)
	}
	sortArrays(out)
	return out
}

// UniqueSolutionStore records exactly one representative per orbit
// under the board's symmetry group: the reflection group always, plus
// transposition when the board is square (where the group grows to
// the full dihedral group of order 8).
type UniqueSolutionStore struct {
	transformer symmetry.Transformer
	square      bool
	solutions   map[piece.Array]bool
}

// NewUniqueSolutionStore returns an empty UniqueSolutionStore. Set
// square to true only when rows == cols, enabling the transpose leg of
// the symmetry group.
func NewUniqueSolutionStore(t symmetry.Transformer, square bool) *UniqueSolutionStore {
	return &UniqueSolutionStore{transformer: t, square: square, solutions: make(map[piece.Array]bool)}
}

// AddSolution records pieces as canonical if it (or any of its
// symmetric images already seen) hasn't been recorded yet; any of its
// own symmetric images not already present are recorded as
// non-canonical. The first solution a mutual orbit is encountered
// through keeps its canonical flag even as later orbit members arrive.
func (s *UniqueSolutionStore) AddSolution(pieces piece.Array) {
	insertIfAbsent(s.solutions, pieces, true)
	insertIfAbsent(s.solutions, s.transformer.FlipX(pieces), false)
	insertIfAbsent(s.solutions, s.transformer.FlipY(pieces), false)
	insertIfAbsent(s.solutions, s.transformer.FlipX(s.transformer.FlipY(pieces)), false)
	if s.square {
		insertIfAbsent(s.solutions, symmetry.Transpose(pieces), false)
		insertIfAbsent(s.solutions, symmetry.Transpose(s.transformer.FlipX(pieces)), false)
		insertIfAbsent(s.solutions, symmetry.Transpose(s.transformer.FlipY(pieces)), false)
		insertIfAbsent(s.solutions, symmetry.Transpose(s.transformer.FlipX(s.transformer.FlipY(pieces))), false)
	}
}

// Solutions returns one representative per orbit, in a stable order.
func (s *UniqueSolutionStore) Solutions() []piece.Array {
	out := make([]piece.Array, 0, len(s.solutions))
	for p, canonical := range s.solutions {
		if canonical {
			out = append(out, p)
		}
	}
	sortArrays(out)
	return out
}

func insertIfAbsent(m map[piece.Array]bool, key piece.Array, value bool) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}

func less(a, b piece.Array) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func sortArrays(arrs []piece.Array) {
	sort.Slice(arrs, func(i, j int) bool { return less(arrs[i], arrs[j]) })
}
