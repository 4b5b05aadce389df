package symmetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeltaSwapReversesPairs(t *testing.T) {
	// swap bit 0 with bit 1
	s := Swap{Mask: 0b01, Delta: 1}
	assert.Equal(t, uint64(0b10), DeltaSwap(0b01, s))
	assert.Equal(t, uint64(0b01), DeltaSwap(0b10, s))
}

func TestFlipXByDeltaSwap8x8(t *testing.T) {
	tr := NewTransformer(8, 8)
	// row 0, leftmost cell (bit 0) flips to the rightmost cell of row 0 (bit 7)
	row0Left := uint64(1)
	flipped := fold(row0Left, tr.xSwaps)
	assert.Equal(t, uint64(1)<<7, flipped)
}

func TestFlipYByDeltaSwap8x8(t *testing.T) {
	tr := NewTransformer(8, 8)
	// column 0, top cell (bit 0) flips to the bottom row's column 0 (bit 56)
	col0Top := uint64(1)
	flipped := fold(col0Top, tr.ySwaps)
	assert.Equal(t, uint64(1)<<56, flipped)
}

func TestTransposeSwapsRowsAndColumns(t *testing.T) {
	// bit at (x=1,y=0) -> bit at (x=0,y=1) under transpose
	src := uint64(1) << 1
	want := uint64(1) << 8
	assert.Equal(t, want, fold(src, transposeSwaps))
}
