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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/config"
	"github.com/frankkopp/pentomino/internal/logging"
	"github.com/frankkopp/pentomino/internal/render"
	"github.com/frankkopp/pentomino/internal/solver"
	"github.com/frankkopp/pentomino/internal/version"
)

var out = message.NewPrinter(language.German)

type boardConfig struct {
	rows, cols int
	initial    uint64
}

var boardConfigs = map[string]boardConfig{
	"3x20":    {rows: 3, cols: 20, initial: 0},
	"4x15":    {rows: 4, cols: 15, initial: 0},
	"5x12":    {rows: 5, cols: 12, initial: 0},
	"6x10":    {rows: 6, cols: 10, initial: 0},
	"8x8_2x2": {rows: 8, cols: 8, initial: (1 << 27) | (1 << 28) | (1 << 35) | (1 << 36)},
}

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	boardName := flag.String("board", "", "board layout\n(3x20|4x15|5x12|6x10|8x8_2x2)")
	solverName := flag.String("solver", "", "solver variant\n(simple|default|optimized-small|optimized-large)")
	unique := flag.Bool("unique", false, "count solutions up to reflection/transposition symmetry")
	quiet := flag.Bool("quiet", false, "suppress per-solution printing, print only the count")
	useColor := flag.Bool("color", false, "render solutions with truecolor backgrounds per piece")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	log := logging.GetLog()

	boardKey := *boardName
	if boardKey == "" {
		boardKey = config.Settings.Board.DefaultBoard
	}
	bc, ok := boardConfigs[boardKey]
	if !ok {
		log.Errorf("unknown board %q", boardKey)
		os.Exit(1)
	}

	variantName := *solverName
	if variantName == "" {
		variantName = config.Settings.Board.DefaultSolver
	}
	variant, ok := solver.ParseVariant(variantName)
	if !ok {
		log.Errorf("unknown solver %q", variantName)
		os.Exit(1)
	}
	if variant == solver.Simple && *unique {
		log.Error("the simple solver does not support --unique")
		os.Exit(1)
	}

	s := solver.New(bc.rows, bc.cols, variant)
	solutions := s.Solve(board.Bitboard(bc.initial), *unique)

	if *quiet {
		out.Printf("%d\n", len(solutions))
		return
	}

	for i, sol := range solutions {
		out.Printf("solution %d/%d:\n", i+1, len(solutions))
		grid := render.Represent(sol, s.Rows(), s.Cols(), s.Transposed())
		if *useColor {
			fmt.Print(render.RenderColor(grid))
		} else {
			fmt.Print(grid.String())
		}
	}
	out.Printf("%d solutions\n", len(solutions))
}

func printVersionInfo() {
	out.Printf("pentomino %s\n", version.Version())
	out.Println("Environment:")
	out.Printf("  commit: %s\n", version.Commit())
	out.Printf("  built:  %s\n", version.BuildTime())
	out.Printf("  go:     %s\n", runtime.Version())
	out.Printf("  arch:   %s\n", runtime.GOARCH)
}
