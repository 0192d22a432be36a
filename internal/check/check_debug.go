//go:build debug

package check

const Enabled = true

func That(cond bool, msg string) {
	if !cond {
		panic("ledstar: contract violated: " + msg)
	}
}
