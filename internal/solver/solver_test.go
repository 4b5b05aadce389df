package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
)

// assertValidTiling checks the structural invariants every solution
// must satisfy regardless of variant: each piece's mask has exactly
// five bits, no two pieces overlap, and together with initial they
// cover the whole board.
func assertValidTiling(t *testing.T, rows, cols int, initial board.Bitboard, pieces piece.Array) {
	t.Helper()
	var union board.Bitboard
	for p, mask := range pieces {
		assert.Equal(t, 5, mask.PopCount(), "piece %d", p)
		assert.Zero(t, uint64(union&mask), "piece %d overlaps an earlier piece", p)
		union |= mask
	}
	assert.Equal(t, board.Mask(rows*cols), union|initial)
}

func TestSimpleSolver3x20(t *testing.T) {
	s := New(3, 20, Simple)
	sols := s.Solve(board.Empty, false)
	assert.NotEmpty(t, sols)
	for _, sol := range sols {
		assertValidTiling(t, 3, 20, board.Empty, sol)
	}
}

func TestOptimizedSmallMatchesDefaultOnUniqueCount(t *testing.T) {
	def := New(4, 15, Default)
	optSmall := New(4, 15, OptimizedSmall)
	defUnique := def.Solve(board.Empty, true)
	optUnique := optSmall.Solve(board.Empty, true)
	assert.Equal(t, len(defUnique), len(optUnique))
}

func TestOptimizedLargeProducesValidTilings(t *testing.T) {
	s := New(6, 10, OptimizedLarge)
	sols := s.Solve(board.Empty, true)
	assert.NotEmpty(t, sols)
	for _, sol := range sols {
		assertValidTiling(t, 6, 10, board.Empty, sol)
	}
}

func TestAllSolutionsIsAtLeastUniqueSolutions(t *testing.T) {
	s := New(8, 8, OptimizedLarge)
	all := s.Solve(board.Empty, false)
	unique := s.Solve(board.Empty, true)
	assert.GreaterOrEqual(t, len(all), len(unique))
}

// TestAllVariantsAgreeOnSmallBoard checks the observational-equivalence
// property every variant must satisfy: the raw (non-unique) solution
// count for a fixed board never depends on which table/pruning strategy
// found it.
func TestAllVariantsAgreeOnSmallBoard(t *testing.T) {
	const want = 8
	for _, v := range []Variant{Simple, Default, OptimizedSmall, OptimizedLarge} {
		s := New(3, 20, v)
		sols := s.Solve(board.Empty, false)
		assert.Len(t, sols, want, "variant %s", v)
	}
}

// TestBoundaryScenarioCounts pins every concrete end-to-end scenario
// down to its documented solution count, both raw and up-to-symmetry.
// These are the numbers an X-seed off-by-one or a missing symmetry
// image in the unique store would silently shift.
func TestBoundaryScenarioCounts(t *testing.T) {
	cases := []struct {
		name             string
		rows, cols       int
		initial          board.Bitboard
		variant          Variant
		wantAll, wantUnq int
	}{
		{"3x20", 3, 20, board.Empty, Default, 8, 2},
		{"4x15", 4, 15, board.Empty, Default, 1472, 368},
		{"5x12", 5, 12, board.Empty, OptimizedLarge, 4040, 1010},
		{"6x10", 6, 10, board.Empty, OptimizedLarge, 9356, 2339},
		{"8x8_2x2", 8, 8, board.Bitboard((1 << 27) | (1 << 28) | (1 << 35) | (1 << 36)), OptimizedLarge, 520, 65},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			all := New(c.rows, c.cols, c.variant).Solve(c.initial, false)
			assert.Len(t, all, c.wantAll)
			unique := New(c.rows, c.cols, c.variant).Solve(c.initial, true)
			assert.Len(t, unique, c.wantUnq)
		})
	}
}

// TestDefaultUniqueMatchesOptimizedLarge guards specifically against a
// UniqueSolutionStore that dedups correctly only when fed one member of
// each orbit at a time (as the Optimized variants' X-seeded outer loop
// does): Default's backtrackSmall has no such restriction and can
// discover two orbit members as independent top-level solutions.
func TestDefaultUniqueMatchesOptimizedLarge(t *testing.T) {
	def := New(4, 15, Default).Solve(board.Empty, true)
	opt := New(4, 15, OptimizedLarge).Solve(board.Empty, true)
	assert.Len(t, def, 368)
	assert.Equal(t, len(opt), len(def))
}

func TestParseVariantRoundTrip(t *testing.T) {
	for _, v := range []Variant{Simple, Default, OptimizedSmall, OptimizedLarge} {
		parsed, ok := ParseVariant(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, parsed)
	}
	_, ok := ParseVariant("nonsense")
	assert.False(t, ok)
}
