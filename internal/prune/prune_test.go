package prune

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/board"
)

func TestCornerRejectedOnWalledCorner(t *testing.T) {
	c := NewChecker(8, 8)
	// covers the top edge cell (1,0) and the left edge cell (0,1)
	// without covering their shared corner cell (0,0).
	top := board.Bitboard(1) << 1   // (1,0) on top edge
	left := board.Bitboard(1) << 8  // (0,1) on left edge
	u := top | left
	assert.True(t, c.CornerRejected(u))
}

func TestCornerNotRejectedWhenCornerCovered(t *testing.T) {
	c := NewChecker(8, 8)
	corner := board.Bitboard(1) // (0,0)
	top := board.Bitboard(1) << 1
	u := corner | top
	assert.False(t, c.CornerRejected(u))
}

func TestHoleCheckersDetectIsolatedCell(t *testing.T) {
	h := BuildHoleCheckers(8, 8)
	// cell 1's neighbors are 0,2,9. Fill 0,2,9 but leave 1 empty.
	next := board.Bitboard(1) | (board.Bitboard(1) << 2) | (board.Bitboard(1) << 9)
	assert.True(t, h.Seals(0, next))
}
