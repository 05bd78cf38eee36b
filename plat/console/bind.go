package console

import "github.com/kylin-x-kernel/axplat-crates/plat/board"

var _ Interface = board.Console{}

// WriteBytes writes the given bytes to the console.
func WriteBytes(b []byte) {
	board.Console{}.WriteBytes(b)
}

// ReadBytes reads the bytes that are already available into b and returns
// their count.
func ReadBytes(b []byte) int {
	return board.Console{}.ReadBytes(b)
}
