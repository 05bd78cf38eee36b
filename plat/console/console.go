// Package console declares the console platform interface and exposes its
// operations as free functions bound, at compile time, to the console of the
// platform selected by the plat_* build tag.
//
// The optional IRQNumber operation exists only in builds with the irq tag.
package console

// Interface is the console contract that every platform implements.
type Interface interface {
	// WriteBytes writes the given bytes to the console.
	WriteBytes(b []byte)

	// ReadBytes reads the bytes that are already available into b and
	// returns their count. It does not wait for input.
	ReadBytes(b []byte) int
}

// IRQInterface is the console contract for builds with interrupt support.
type IRQInterface interface {
	Interface

	// IRQNumber returns the console interrupt number. The second result
	// is false if the console has no interrupt line.
	IRQNumber() (uint32, bool)
}

// Writer adapts the bound console to io.Writer, e.g. as a kfmt output sink.
type Writer struct{}

// Write writes p to the console. It never fails.
func (Writer) Write(p []byte) (int, error) {
	WriteBytes(p)
	return len(p), nil
}
