package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
)

func TestSmallTableAnchorInvariant(t *testing.T) {
	table := BuildTable(8, 8)
	for anchor := 0; anchor < 64; anchor++ {
		for p := 0; p < piece.NumPieces; p++ {
			for _, mask := range table[anchor][p] {
				assert.Equal(t, anchor, mask.TrailingZeros())
				assert.Equal(t, 5, mask.PopCount())
			}
		}
	}
}

func TestSmallTableMasksStayInBounds(t *testing.T) {
	table := BuildTable(8, 8)
	full := board.Mask(64)
	for anchor := 0; anchor < 64; anchor++ {
		for p := 0; p < piece.NumPieces; p++ {
			for _, mask := range table[anchor][p] {
				assert.Equal(t, mask, mask&full)
			}
		}
	}
}

func TestLargeTableExcludesXAndUsedPieces(t *testing.T) {
	table := BuildLargeTable(8, 8)
	usedO := 1 << uint(piece.O)
	for _, pl := range table[1][usedO] {
		assert.NotEqual(t, piece.X, pl.Piece)
		assert.NotEqual(t, piece.O, pl.Piece)
		assert.Equal(t, 5, pl.Mask.PopCount())
	}
}

func TestXSeedsStayInUpperLeftQuadrant(t *testing.T) {
	rows, cols := 8, 8
	maxOy := (rows - 1) / 2
	maxOx := (cols - 1) / 2
	seeds := BuildXSeeds(rows, cols)
	assert.NotEmpty(t, seeds)
	for _, mask := range seeds {
		assert.NotEqual(t, board.Bitboard(0), mask)
		minX, minY := minXY(mask, cols)
		assert.Less(t, minX, maxOx, "seed offset ox must be strictly < (cols-1)/2")
		assert.Less(t, minY, maxOy, "seed offset oy must be strictly < (rows-1)/2")
	}
}

// TestXSeedsMatchRectangularBoards exercises the non-square boards
// from spec.md §8, where rows != cols gives maxOx and maxOy different
// bounds and a swapped-axis bug wouldn't show up on an 8x8 board alone.
func TestXSeedsMatchRectangularBoards(t *testing.T) {
	for _, bc := range []struct{ rows, cols int }{{3, 20}, {4, 15}, {5, 12}, {6, 10}} {
		maxOy := (bc.rows - 1) / 2
		maxOx := (bc.cols - 1) / 2
		seeds := BuildXSeeds(bc.rows, bc.cols)
		assert.NotEmpty(t, seeds)
		for _, mask := range seeds {
			minX, minY := minXY(mask, bc.cols)
			assert.Less(t, minX, maxOx)
			assert.Less(t, minY, maxOy)
		}
	}
}

// minXY returns the smallest x and y coordinate among mask's set cells.
func minXY(mask board.Bitboard, cols int) (int, int) {
	minX, minY := 64, 64
	for cell := 0; cell < 64; cell++ {
		if !mask.Has(board.Cell(cell)) {
			continue
		}
		x, y := board.Cell(cell).XY(cols)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
	}
	return minX, minY
}
