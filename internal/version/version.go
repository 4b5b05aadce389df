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

// Package version holds build-time metadata. The three vars below are
// meant to be overridden at link time with
//
//	go build -ldflags "-X github.com/frankkopp/pentomino/internal/version.tag=v1.2.3 \
//	  -X github.com/frankkopp/pentomino/internal/version.commit=abcdef0 \
//	  -X github.com/frankkopp/pentomino/internal/version.buildTime=2026-07-31T00:00:00Z"
package version

var (
	tag       = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// Version returns the release tag, falling back to "dev" for an
// unreleased build.
func Version() string {
	return tag
}

// Commit returns the VCS commit the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns when the binary was built.
func BuildTime() string {
	return buildTime
}

// String returns a single-line summary of all three fields.
func String() string {
	return tag + " (" + commit + ", built " + buildTime + ")"
}
