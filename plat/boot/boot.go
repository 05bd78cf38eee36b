// Package boot declares the platform initialization interface and binds it
// to the platform selected by the plat_* build tag.
package boot

import "github.com/kylin-x-kernel/axplat-crates/plat/board"

// Interface is the initialization contract that every platform implements.
type Interface interface {
	// InitEarly runs on the boot CPU before anything else in the kernel.
	// Platforms bring up their console here.
	InitEarly(cpuID int, arg uintptr)

	// InitLater runs once the kernel core is up.
	InitLater(cpuID int, arg uintptr)
}

var _ Interface = board.Init{}

// InitEarly runs the platform's early initialization.
func InitEarly(cpuID int, arg uintptr) {
	board.Init{}.InitEarly(cpuID, arg)
}

// InitLater runs the platform's late initialization.
func InitLater(cpuID int, arg uintptr) {
	board.Init{}.InitLater(cpuID, arg)
}

// Platform returns the name of the platform the kernel was built for.
func Platform() string {
	return board.Name
}
