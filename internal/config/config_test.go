package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupDefaults(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	assert.Equal(t, "8x8_2x2", Settings.Board.DefaultBoard)
	assert.Equal(t, "optimized-large", Settings.Board.DefaultSolver)
	assert.Equal(t, "#FF8080", Settings.Render.Palette["O"])
	assert.Equal(t, "#800080", Settings.Render.Palette["Z"])
}

func TestSetupIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Board.DefaultBoard = "3x20"
	Setup()
	assert.Equal(t, "3x20", Settings.Board.DefaultBoard)
}
