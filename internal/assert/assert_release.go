//go:build !debug

// Package assert is a helper to allow assert tests in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in a non production setting.
package assert

// DEBUG if this is set to "true" asserts are evaluated
const DEBUG = false

// Assert is a no-op in release builds. GO still evaluates the call's
// arguments even when the function body does nothing, so callers must
// also wrap calls in "if assert.DEBUG { ... }" to avoid the run time
// cost of building the message on the hot path.
func Assert(test bool, msg string, a ...interface{}) {}
