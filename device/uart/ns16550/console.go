package ns16550

// Console implements the platform console operations on top of the NS16550
// driver. Boards that use this UART as their console embed Console in their
// console binding type and add board specific operations (such as the IRQ
// number) next to it.
type Console struct{}

// WriteBytes writes the given bytes to the console.
func (Console) WriteBytes(b []byte) {
	WriteBytes(b)
}

// ReadBytes reads bytes from the console into b and returns the number of
// bytes read.
func (Console) ReadBytes(b []byte) int {
	return ReadBytes(b)
}
