//go:build irq

package console

import "github.com/kylin-x-kernel/axplat-crates/plat/board"

var _ IRQInterface = board.Console{}

// IRQNumber returns the console interrupt number, if it has one.
func IRQNumber() (uint32, bool) {
	return board.Console{}.IRQNumber()
}
