//go:build debug

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in a non production setting.
package assert

import "fmt"

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = true

// Assert panics with the given message if test evaluates to false.
// Callers should still wrap calls in "if assert.DEBUG { ... }" so the
// arguments are not evaluated at all in release builds.
//  if assert.DEBUG {
//    assert.Assert(anchor == bits.TrailingZeros64(uint64(mask)), "anchor mismatch")
//  }
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
