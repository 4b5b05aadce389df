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

package config

// renderConfiguration holds the truecolor palette used by --color,
// keyed by the single-letter piece label. Overridable via config.toml
// so the palette never needs a code change.
type renderConfiguration struct {
	Palette map[string]string
}

// defaultPalette is the fixed palette from the spec: one hex RGB color
// per piece label.
var defaultPalette = map[string]string{
	"O": "#FF8080",
	"P": "#FFFF80",
	"Q": "#80FF80",
	"R": "#80FFFF",
	"S": "#8080FF",
	"T": "#FF80FF",
	"U": "#800000",
	"V": "#808000",
	"W": "#008000",
	"X": "#008080",
	"Y": "#000080",
	"Z": "#800080",
}

func setupRender() {
	if Settings.Render.Palette == nil {
		Settings.Render.Palette = defaultPalette
		return
	}
	// fill in any piece missing from a partial config file override
	for label, hex := range defaultPalette {
		if _, ok := Settings.Render.Palette[label]; !ok {
			Settings.Render.Palette[label] = hex
		}
	}
}
