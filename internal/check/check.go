//go:build !debug

// Package check holds contract assertions for the hot path. They compile to
// nothing unless the binary is built with -tags debug.
package check

const Enabled = false

// That panics with msg when cond is false in debug builds.
func That(cond bool, msg string) {}
