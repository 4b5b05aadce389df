package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/pentomino/internal/piece"
)

func TestXHasOneOrientation(t *testing.T) {
	shapes := Generate(piece.X)
	assert.Len(t, shapes, 1)
}

func TestYAndQHaveEightOrientations(t *testing.T) {
	assert.Len(t, Generate(piece.Y), 8)
	assert.Len(t, Generate(piece.Q), 8)
}

func TestEveryShapeHasFiveCells(t *testing.T) {
	for _, p := range piece.All() {
		for _, s := range Generate(p) {
			assert.Len(t, s, 5, "piece %s", p)
		}
	}
}

func TestEveryShapeIsNormalized(t *testing.T) {
	for _, p := range piece.All() {
		for _, s := range Generate(p) {
			xMin, yMin := s[0].X, s[0].Y
			for _, c := range s {
				xMin = min(xMin, c.X)
				yMin = min(yMin, c.Y)
			}
			assert.Equal(t, 0, xMin, "piece %s", p)
			assert.Equal(t, 0, yMin, "piece %s", p)
		}
	}
}

func TestFirstCoordIsRowMajorEarliest(t *testing.T) {
	for _, p := range piece.All() {
		for _, s := range Generate(p) {
			for _, c := range s {
				if c.Y < s[0].Y || (c.Y == s[0].Y && c.X < s[0].X) {
					t.Fatalf("piece %s: shape %v has anchor %v but earlier cell %v", p, s, s[0], c)
				}
			}
		}
	}
}

// TestTotalShapeCountIsSixtyThree mirrors the reference solver's own
// calibration: the twelve pentominoes have 63 distinct orientations in
// total (X contributes 1, O contributes 2, P, Q, R, S and Y contribute 8
// each, and T, U, V, W and Z contribute 4 each).
func TestTotalShapeCountIsSixtyThree(t *testing.T) {
	total := 0
	for _, shapes := range GenerateAll() {
		total += len(shapes)
	}
	assert.Equal(t, 63, total)
}
