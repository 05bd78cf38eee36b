//go:build baremetal && arm64

package smccc

// hvc loads id and the arguments into x0-x3, issues HVC #0 and returns x0.
func hvc(id, a0, a1, a2 uintptr) int64
