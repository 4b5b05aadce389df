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

// Command pentobench times every board with the Default, OptimizedSmall
// and OptimizedLarge solver variants (Simple is not run), in both
// all-solutions and unique mode, and reports solutions found and
// elapsed time per run. Runs are
// independent Solve calls dispatched across a bounded worker pool; the
// core solver package itself never does any of its own concurrency.
package main

import (
	"context"
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/frankkopp/workerpool"
	"github.com/pkg/profile"
	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/pentomino/internal/board"
	"github.com/frankkopp/pentomino/internal/logging"
	"github.com/frankkopp/pentomino/internal/solver"
	"github.com/frankkopp/pentomino/internal/util"
)

var out = message.NewPrinter(language.German)

type benchCase struct {
	name       string
	rows, cols int
	initial    uint64
}

var benchCases = []benchCase{
	{"3x20", 3, 20, 0},
	{"4x15", 4, 15, 0},
	{"5x12", 5, 12, 0},
	{"6x10", 6, 10, 0},
	{"8x8_2x2", 8, 8, (1 << 27) | (1 << 28) | (1 << 35) | (1 << 36)},
}

var variants = []solver.Variant{solver.Default, solver.OptimizedSmall, solver.OptimizedLarge}

type result struct {
	board     string
	variant   string
	unique    bool
	count     int
	elapsed   time.Duration
}

func main() {
	profileMode := flag.String("profile", "", "enable profiling (cpu|mem), written to the working directory")
	workers := flag.Int("workers", runtime.NumCPU(), "maximum concurrent Solve calls")
	flag.Parse()

	log := logging.GetLog()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
		// no profiling
	default:
		log.Errorf("unknown --profile mode %q (want cpu or mem)", *profileMode)
		return
	}

	sem := semaphore.NewWeighted(int64(*workers))
	pool := workerpool.New(*workers)

	var (
		mu      sync.Mutex
		results []result
	)

	for _, bc := range benchCases {
		for _, v := range variants {
			bc, v := bc, v
			pool.Submit(func() {
				ctx := context.Background()
				if err := sem.Acquire(ctx, 1); err != nil {
					log.Errorf("semaphore acquire failed: %v", err)
					return
				}
				defer sem.Release(1)

				for _, unique := range [2]bool{false, true} {
					r := runOne(bc, v, unique)
					mu.Lock()
					results = append(results, r)
					mu.Unlock()
				}
			})
		}
	}
	pool.StopWait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].board != results[j].board {
			return results[i].board < results[j].board
		}
		if results[i].variant != results[j].variant {
			return results[i].variant < results[j].variant
		}
		return !results[i].unique && results[j].unique
	})

	for _, r := range results {
		out.Printf("%-10s %-16s unique=%-5v solutions=%-6d elapsed=%s (%d solutions/s)\n",
			r.board, r.variant, r.unique, r.count, r.elapsed,
			util.SolutionsPerSecond(uint64(r.count), r.elapsed))
	}

	fmt.Println()
}

func runOne(bc benchCase, variant solver.Variant, unique bool) result {
	s := solver.New(bc.rows, bc.cols, variant)
	start := time.Now()
	sols := s.Solve(board.Bitboard(bc.initial), unique)
	return result{
		board:   bc.name,
		variant: variant.String(),
		unique:  unique,
		count:   len(sols),
		elapsed: time.Since(start),
	}
}
