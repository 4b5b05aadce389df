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

// Package util collects small helpers shared across packages that are
// not worth their own package.
package util

import "time"

// Min returns the smaller of the two given ints.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the larger of the two given ints.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// Abs is a non branching Abs function for determining the absolute
// value of an int.
func Abs(n int) int {
	y := n >> 63
	return (n ^ y) - y
}

// SolutionsPerSecond returns the number of solutions found per second
// for the given count and duration. Used by the benchmark harness to
// report throughput.
func SolutionsPerSecond(count uint64, duration time.Duration) uint64 {
	if duration <= 0 {
		return 0
	}
	return uint64(float64(count) / duration.Seconds())
}
