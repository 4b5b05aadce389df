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

// Package solver implements exhaustive pentomino tiling enumeration by
// backtracking over a Bitboard, in four variants that trade table size
// and pruning effort for search-time cost. Every variant shares the
// same Solve contract; callers pick a Variant and never see the table
// layout underneath it.
package solver

import (
	"fmt"

	"github.com/op/go-logging"

	"github.com/frankkopp/pentomino/internal/board"
	myLogging "github.com/frankkopp/pentomino/internal/logging"
	"github.com/frankkopp/pentomino/internal/piece"
	"github.com/frankkopp/pentomino/internal/placement"
	"github.com/frankkopp/pentomino/internal/prune"
	"github.com/frankkopp/pentomino/internal/store"
	"github.com/frankkopp/pentomino/internal/symmetry"
)

var log *logging.Logger

func init() {
	log = myLogging.GetSolveLog()
}

// Variant selects which precomputed table and pruning strategy the
// Solver uses during backtracking.
type Variant int

const (
	// Simple enumerates every placement at every anchor with no
	// pruning beyond the board-occupancy check.
	Simple Variant = iota
	// Default uses the same unpruned table and search loop as Simple;
	// unlike Simple it also supports unique mode.
	Default
	// OptimizedSmall bakes corner and hole rejection into the table at
	// construction time and symmetry-breaks the X piece via seeds.
	OptimizedSmall
	// OptimizedLarge additionally keys the table by the used-piece set
	// so the search never re-tests piece membership.
	OptimizedLarge
)

var variantNames = map[Variant]string{
	Simple:         "simple",
	Default:        "default",
	OptimizedSmall: "optimized-small",
	OptimizedLarge: "optimized-large",
}

// String returns the CLI-facing name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// ParseVariant returns the Variant for a CLI-facing name.
func ParseVariant(name string) (Variant, bool) {
	for v, n := range variantNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}

// Solver enumerates pentomino tilings of a fixed-size rectangular
// board. Every table it needs is built once in New and never mutated
// again; Solve is safe to call repeatedly, and from multiple
// goroutines, on the same Solver.
type Solver struct {
	rows, cols int
	transposed bool
	variant    Variant

	smallTable       placement.SmallTable
	prunedSmallTable placement.PrunedSmallTable
	largeTable       placement.LargeTable
	xSeeds           []board.Bitboard
	holes            prune.HoleCheckers
	transformer      symmetry.Transformer
}

// New builds a Solver for a board with the given row and column count
// using the given Variant. If rows < cols the board is transposed
// internally (rows and cols are swapped) so every table is built for
// the taller-or-equal orientation; Solve re-maps the caller's initial
// mask into that orientation, and render.Represent (given Rows, Cols
// and Transposed) un-transposes the returned arrays.
func New(rows, cols int, variant Variant) *Solver {
	if rows*cols > 64 {
		panic(fmt.Sprintf("board %dx%d exceeds the 64-cell bitboard capacity", rows, cols))
	}
	transposed := false
	if rows < cols {
		rows, cols = cols, rows
		transposed = true
	}
	s := &Solver{rows: rows, cols: cols, transposed: transposed, variant: variant}
	switch variant {
	case Simple, Default:
		s.smallTable = placement.BuildTable(rows, cols)
	case OptimizedSmall:
		s.prunedSmallTable = placement.BuildPrunedSmallTable(rows, cols)
		s.xSeeds = placement.BuildXSeeds(rows, cols)
		s.holes = prune.BuildHoleCheckers(rows, cols)
	case OptimizedLarge:
		s.largeTable = placement.BuildLargeTable(rows, cols)
		s.xSeeds = placement.BuildXSeeds(rows, cols)
		s.holes = prune.BuildHoleCheckers(rows, cols)
	}
	s.transformer = symmetry.NewTransformer(rows, cols)
	log.Debugf("solver ready: %dx%d variant=%s transposed=%v", rows, cols, variant, transposed)
	return s
}

// Rows returns the internal row count used to build this Solver's
// tables (after any construction-time transpose).
func (s *Solver) Rows() int { return s.rows }

// Cols returns the internal column count used to build this Solver's
// tables (after any construction-time transpose).
func (s *Solver) Cols() int { return s.cols }

// Transposed reports whether New swapped rows and cols at construction
// time because the caller's rows < cols.
func (s *Solver) Transposed() bool { return s.transposed }

// Solve enumerates every way to tile the board's empty cells (the
// complement of initial) with all twelve pentominoes. When unique is
// true, solutions that are reflections (or, on a square board,
// transpositions) of one another count once; otherwise every
// geometric embedding is returned. initial is laid out on the caller's
// board; the returned arrays use the Solver's internal orientation.
func (s *Solver) Solve(initial board.Bitboard, unique bool) []piece.Array {
	if unique && s.variant == Simple {
		panic("solver: Simple variant does not support unique mode")
	}
	if s.transposed {
		// the caller's board has s.cols rows and s.rows columns
		var remapped board.Bitboard
		for c := 0; c < s.rows*s.cols; c++ {
			if initial.Has(board.Cell(c)) {
				x, y := board.Cell(c).XY(s.rows)
				remapped = remapped.Set(board.NewCell(y, x, s.cols))
			}
		}
		initial = remapped
	}
	var st store.Store
	square := s.rows == s.cols
	if unique {
		st = store.NewUniqueSolutionStore(s.transformer, square)
	} else {
		st = store.NewAllSolutionStore(s.transformer)
	}

	var pieces piece.Array
	switch s.variant {
	case Simple, Default:
		s.backtrackSmall(initial, piece.Full, &pieces, st)
	case OptimizedSmall:
		s.solveOptimized(initial, st, &pieces, s.backtrackPrunedSmall)
	case OptimizedLarge:
		s.solveOptimized(initial, st, &pieces, s.backtrackLarge)
	}

	found := st.Solutions()
	log.Infof("variant=%s unique=%v solutions=%d", s.variant, unique, len(found))
	return found
}

func (s *Solver) backtrackSmall(current board.Bitboard, remain piece.Set, pieces *piece.Array, st store.Store) {
	if remain == 0 {
		st.AddSolution(*pieces)
		return
	}
	target := current.TrailingOnes()
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		if !remain.Has(p) {
			continue
		}
		for _, mask := range s.smallTable[target][p] {
			if current&mask != 0 {
				continue
			}
			pieces[p] = mask
			s.backtrackSmall(current|mask, remain.Without(p), pieces, st)
			pieces[p] = board.Empty
		}
	}
}

// solveOptimized drives the X-seed outer loop shared by the two
// Optimized variants: every solution places X exactly once, so seeding
// it first removes the need to try X at every anchor during the main
// backtrack. BuildXSeeds already excludes the zero offset, so every
// seed here is a valid upper-left-quadrant placement.
func (s *Solver) solveOptimized(initial board.Bitboard, st store.Store, pieces *piece.Array, backtrack func(board.Bitboard, piece.Set, *piece.Array, store.Store)) {
	remain := piece.Full.Without(piece.X)
	for _, x := range s.xSeeds {
		if initial&x != 0 {
			continue
		}
		pieces[piece.X] = x
		backtrack(initial|x, remain, pieces, st)
		pieces[piece.X] = board.Empty
	}
}

func (s *Solver) backtrackPrunedSmall(current board.Bitboard, remain piece.Set, pieces *piece.Array, st store.Store) {
	if remain == 0 {
		st.AddSolution(*pieces)
		return
	}
	target := current.TrailingOnes()
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		if !remain.Has(p) {
			continue
		}
		for _, mask := range s.prunedSmallTable[target][p] {
			if current&mask != 0 {
				continue
			}
			next := current | mask
			if s.holes.Seals(target, next) {
				continue
			}
			pieces[p] = mask
			s.backtrackPrunedSmall(next, remain.Without(p), pieces, st)
			pieces[p] = board.Empty
		}
	}
}

func (s *Solver) backtrackLarge(current board.Bitboard, remain piece.Set, pieces *piece.Array, st store.Store) {
	if remain == 0 {
		st.AddSolution(*pieces)
		return
	}
	target := current.TrailingOnes()
	usedSet := int(piece.Full &^ remain)
	for _, pl := range s.largeTable[target][usedSet] {
		if current&pl.Mask != 0 {
			continue
		}
		next := current | pl.Mask
		if s.holes.Seals(target, next) {
			continue
		}
		pieces[pl.Piece] = pl.Mask
		s.backtrackLarge(next, remain.Without(pl.Piece), pieces, st)
		pieces[pl.Piece] = board.Empty
	}
}
