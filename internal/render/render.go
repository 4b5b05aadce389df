/*
 * Pentomino - a solver and tiling enumerator for the twelve free pentominoes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package render turns a solved piece.Array back into a 2-D grid, and
// from there into either plain-letter or truecolor terminal output.
// Geometry (rows, cols, whether the board was transposed at solve
// time) is passed in explicitly by the caller — a Solver's internal
// orientation never leaks into the array itself.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/config"
	"github.com/frankkopp/pentomino/internal/piece"
)

// Grid is a rendered board: Grid[y][x] is the piece occupying that
// cell, or nil if the cell was part of the initial (pre-filled) mask.
type Grid [][]*piece.Piece

// Represent converts a solved piece.Array into a Grid with the given
// row and column count. If transposed is true (the board was swapped
// at solve time because rows < cols), the grid is un-swapped back to
// its original orientation before being returned.
func Represent(pieces piece.Array, rows, cols int, transposed bool) Grid {
	outRows, outCols := rows, cols
	if transposed {
		outRows, outCols = cols, rows
	}
	grid := make(Grid, outRows)
	for y := range grid {
		grid[y] = make([]*piece.Piece, outCols)
	}
	for p := piece.Piece(0); int(p) < piece.NumPieces; p++ {
		mask := pieces[p]
		if mask == board.Empty {
			continue
		}
		for cell := 0; cell < rows*cols; cell++ {
			if !mask.Has(board.Cell(cell)) {
				continue
			}
			x, y := board.Cell(cell).XY(cols)
			if transposed {
				x, y = y, x
			}
			pv := p
			grid[y][x] = &pv
		}
	}
	return grid
}

// String renders the grid as plain single-letter rows, one piece label
// per cell and a '.' for any uncovered (initial-mask) cell.
func (g Grid) String() string {
	var b strings.Builder
	for _, row := range g {
		for _, cell := range row {
			if cell == nil {
				b.WriteByte('.')
			} else {
				b.WriteString(cell.String())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderColor renders the grid as truecolor terminal output: each
// piece's two-character label is printed on its palette background,
// read from config.Settings.Render.Palette. Uncovered cells print as
// two plain spaces.
func RenderColor(g Grid) string {
	var b strings.Builder
	for _, row := range g {
		for _, cell := range row {
			if cell == nil {
				b.WriteString("  ")
				continue
			}
			label := cell.String()
			r, gr, bl := hexToRGB(config.Settings.Render.Palette[label])
			fr, fg, fb := contrastingForeground(r, gr, bl)
			c := color.RGB(fr, fg, fb).AddBgRGB(r, gr, bl)
			fmt.Fprint(&b, c.Sprint(label+label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// contrastingForeground picks black or white, whichever reads more
// clearly against the given background, by the standard perceived
// luminance weighting.
func contrastingForeground(r, g, b int) (int, int, int) {
	luminance := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if luminance > 150 {
		return 0, 0, 0
	}
	return 255, 255, 255
}

func hexToRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 255, 255, 255
	}
	rv, _ := strconv.ParseInt(hex[0:2], 16, 0)
	gv, _ := strconv.ParseInt(hex[2:4], 16, 0)
	bv, _ := strconv.ParseInt(hex[4:6], 16, 0)
	return int(rv), int(gv), int(bv)
}
