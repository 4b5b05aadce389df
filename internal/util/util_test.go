package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, Min(3, 5))
	assert.Equal(t, 5, Max(3, 5))
	assert.Equal(t, 3, Min(5, 3))
	assert.Equal(t, 5, Max(5, 3))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 0, Abs(0))
}

func TestSolutionsPerSecond(t *testing.T) {
	assert.Equal(t, uint64(1000), SolutionsPerSecond(1000, time.Second))
	assert.Equal(t, uint64(0), SolutionsPerSecond(1000, 0))
}
