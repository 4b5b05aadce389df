package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
)

func TestRepresentRoundTrip(t *testing.T) {
	var pieces piece.Array
	pieces[piece.O] = board.Bitboard(0b11111) // row 0, cols 0..4 on a 5-wide board

	grid := Represent(pieces, 1, 5, false)
	assert.Len(t, grid, 1)
	assert.Len(t, grid[0], 5)
	for x := 0; x < 5; x++ {
		if assert.NotNil(t, grid[0][x]) {
			assert.Equal(t, piece.O, *grid[0][x])
		}
	}
}

func TestRepresentUncoveredCellIsNil(t *testing.T) {
	var pieces piece.Array
	grid := Represent(pieces, 2, 2, false)
	for _, row := range grid {
		for _, cell := range row {
			assert.Nil(t, cell)
		}
	}
}

func TestRepresentUnTransposes(t *testing.T) {
	// internal board is 3 rows x 1 col (transposed from a 1x3 board);
	// piece occupies internal cells 0,1,2 (a vertical run of 3 — not a
	// real pentomino shape, just exercising the coordinate swap).
	var pieces piece.Array
	pieces[piece.O] = board.Bitboard(0b111)
	grid := Represent(pieces, 3, 1, true)
	// un-transposed output should be 1 row x 3 cols
	assert.Len(t, grid, 1)
	assert.Len(t, grid[0], 3)
}

func TestGridStringUsesDotsForUncovered(t *testing.T) {
	var pieces piece.Array
	pieces[piece.X] = board.Bitboard(0b1)
	grid := Represent(pieces, 1, 2, false)
	s := grid.String()
	assert.Equal(t, "X.\n", s)
}
