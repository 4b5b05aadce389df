package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCell(t *testing.T) {
	assert.Equal(t, Cell(0), NewCell(0, 0, 8))
	assert.Equal(t, Cell(8), NewCell(0, 1, 8))
	assert.Equal(t, Cell(27), NewCell(3, 3, 8))
}

func TestCellXY(t *testing.T) {
	x, y := Cell(27).XY(8)
	assert.Equal(t, 3, x)
	assert.Equal(t, 3, y)
}

func TestBitboardHasSet(t *testing.T) {
	b := Empty
	b = b.Set(Cell(3))
	assert.True(t, b.Has(Cell(3)))
	assert.False(t, b.Has(Cell(4)))
	assert.Equal(t, 1, b.PopCount())
}

func TestTrailingOnes(t *testing.T) {
	assert.Equal(t, 0, Empty.TrailingOnes())
	assert.Equal(t, 3, Bitboard(0b111).TrailingOnes())
	assert.Equal(t, 2, Bitboard(0b1011).TrailingOnes())
}

func TestMask(t *testing.T) {
	assert.Equal(t, Bitboard(0b1111), Mask(4))
	assert.Equal(t, Full, Mask(64))
}

func TestTrailingZeros(t *testing.T) {
	assert.Equal(t, 3, Bitboard(0b1000).TrailingZeros())
}
