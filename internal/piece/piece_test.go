package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "O", O.String())
	assert.Equal(t, "X", X.String())
	assert.Equal(t, "Z", Z.String())
	assert.Equal(t, Piece(9), X)
}

func TestParse(t *testing.T) {
	p, ok := Parse("X")
	assert.True(t, ok)
	assert.Equal(t, X, p)

	_, ok = Parse("?")
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, NumPieces)
	assert.Equal(t, O, all[0])
	assert.Equal(t, Z, all[11])
}

func TestSet(t *testing.T) {
	var s Set
	assert.False(t, s.Has(O))
	s = s.With(O).With(X)
	assert.True(t, s.Has(O))
	assert.True(t, s.Has(X))
	assert.False(t, s.Has(P))
	s = s.Without(O)
	assert.False(t, s.Has(O))
	assert.Equal(t, "{X}", s.String())
}

func TestFullSet(t *testing.T) {
	for i := 0; i < NumPieces; i++ {
		assert.True(t, Full.Has(Piece(i)))
	}
}
