package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/piece"
	"github.com/frankkopp/pentomino/internal/symmetry"
)

func sampleSolution() piece.Array {
	var a piece.Array
	for i := range a {
		a[i] = board.Bitboard(1) << uint(i*5)
	}
	return a
}

func TestAllSolutionStoreOrbitOfFour(t *testing.T) {
	tr := symmetry.NewTransformer(8, 8)
	s := NewAllSolutionStore(tr)
	s.AddSolution(sampleSolution())
	sols := s.Solutions()
	assert.LessOrEqual(t, len(sols), 4)
	assert.NotEmpty(t, sols)
}

func TestUniqueSolutionStoreKeepsOneCanonical(t *testing.T) {
	tr := symmetry.NewTransformer(8, 8)
	s := NewUniqueSolutionStore(tr, true)
	p := sampleSolution()
	s.AddSolution(p)
	sols := s.Solutions()
	assert.Len(t, sols, 1)
	assert.Equal(t, p, sols[0])
}

func TestUniqueSolutionStoreDedupsSymmetricDuplicate(t *testing.T) {
	tr := symmetry.NewTransformer(8, 8)
	s := NewUniqueSolutionStore(tr, true)
	p := sampleSolution()
	s.AddSolution(p)
	mirrored := tr.FlipX(p)
	s.AddSolution(mirrored)
	assert.Len(t, s.Solutions(), 1)
}

// TestUniqueSolutionStoreDedups180RotationDiscoveredIndependently covers
// the case AllSolutionStore-style callers hit but a single FlipX-then-
// FlipY probe never would: a caller (like Default's unrestricted
// backtrack) discovers a tiling's 180-degree rotation as its own,
// independently-found solution, not as a transform of the first call's
// argument. Recording pieces must also record FlipX(FlipY(pieces)) so
// this second AddSolution lands as a non-canonical duplicate, not a
// second canonical entry.
func TestUniqueSolutionStoreDedups180RotationDiscoveredIndependently(t *testing.T) {
	tr := symmetry.NewTransformer(8, 8)
	s := NewUniqueSolutionStore(tr, true)
	p := sampleSolution()
	s.AddSolution(p)
	rotated := tr.FlipX(tr.FlipY(p))
	s.AddSolution(rotated)
	assert.Len(t, s.Solutions(), 1)
}
