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

// Package config holds globally available configuration variables which
// are either set by defaults, read from a TOML config file, or
// overridden by command line options.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/pentomino/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the config file in use (relative to
	// the working directory unless overridden by --config).
	ConfFile = "./config.toml"

	// LogLevel is the general log level, see github.com/op/go-logging.Level.
	LogLevel = 4 // INFO

	// SolveLogLevel is the log level used by the backtracking engine.
	SolveLogLevel = 4 // INFO

	// TestLogLevel is the log level used by tests.
	TestLogLevel = 4 // INFO

	// Settings is the global configuration read in from file.
	Settings conf

	initialized = false
)

// LogLevels maps log level names to go-logging levels.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type conf struct {
	Render renderConfiguration
	Board  boardConfiguration
}

// Setup reads the configuration file and sets settings from it, falling
// back to defaults where the file is absent or incomplete.
func Setup() {
	if initialized {
		return
	}

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file could not be parsed. Using defaults. (", err, ")")
	}

	setupRender()
	setupBoard()
	initialized = true
}

// String prints out the current configuration settings and values using
// reflection.
func (c *conf) String() string {
	var b strings.Builder
	b.WriteString("Render Config:\n")
	dump(&b, reflect.ValueOf(&c.Render).Elem())
	b.WriteString("\nBoard Config:\n")
	dump(&b, reflect.ValueOf(&c.Board).Elem())
	return b.String()
}

func dump(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "%-2d: %-16s %-8s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
