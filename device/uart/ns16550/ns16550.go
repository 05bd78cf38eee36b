// Package ns16550 implements a polling driver for NS16550A compatible UARTs.
//
// The driver keeps a single port in a package-level singleton that comes into
// existence when InitEarly is called during early boot. Every operation takes
// an interrupt-masking spinlock, which makes the console usable from
// interrupt handlers and panic paths, and guarantees that concurrent writes
// never interleave.
//
// Calling any operation before InitEarly, or calling InitEarly twice, is a
// programming error and panics.
package ns16550

import (
	"github.com/kylin-x-kernel/axplat-crates/kernel"
	"github.com/kylin-x-kernel/axplat-crates/kernel/sync"
)

var (
	uart sync.LazyInit[sync.SpinNoIrq[SerialPort]]

	// ErrNotInitialized is raised when the driver is used before InitEarly.
	ErrNotInitialized = &kernel.Error{Module: "ns16550", Message: "driver used before InitEarly"}

	// ErrAlreadyInitialized is raised when InitEarly is called twice.
	ErrAlreadyInitialized = &kernel.Error{Module: "ns16550", Message: "InitEarly called twice"}
)

// InitEarly initializes the UART whose byte-spaced registers are mapped at
// the virtual address base and makes it the driver's port. It must be called
// exactly once, before any other function in this package.
func InitEarly(base uintptr) {
	InitEarlyWithStride(base, 0)
}

// InitEarlyWithStride behaves like InitEarly for UARTs whose registers are
// spaced 1<<regShift bytes apart (e.g. regShift 2 for 32-bit spaced
// DesignWare blocks).
func InitEarlyWithStride(base uintptr, regShift uint) {
	if uart.IsInit() {
		panic(ErrAlreadyInitialized)
	}

	uart.InitOnce(func(guard *sync.SpinNoIrq[SerialPort]) {
		port := guard.Lock()
		*port = NewSerialPort(base, regShift)
		port.Init()
		guard.Unlock()
	})
}

// IsInitialized returns true once InitEarly has completed.
func IsInitialized() bool {
	return uart.IsInit()
}

func guard() *sync.SpinNoIrq[SerialPort] {
	if !uart.IsInit() {
		panic(ErrNotInitialized)
	}

	return uart.Get()
}

// putchar sends c, preceded by a carriage return if c is a line feed. This is
// the only translation the driver applies to outgoing data.
func putchar(port *SerialPort, c byte) {
	if c == '\n' {
		port.Send('\r')
	}
	port.Send(c)
}

// Putchar writes a byte to the console.
func Putchar(c byte) {
	g := guard()
	putchar(g.Lock(), c)
	g.Unlock()
}

// WriteBytes writes all bytes in b to the console under a single lock
// acquisition, so output from concurrent callers is never interleaved.
func WriteBytes(b []byte) {
	g := guard()
	port := g.Lock()
	for _, c := range b {
		putchar(port, c)
	}
	g.Unlock()
}

// Getchar reads a byte from the console without waiting. If no input is
// available it returns ErrWouldBlock.
func Getchar() (byte, *kernel.Error) {
	g := guard()
	c, err := g.Lock().TryReceive()
	g.Unlock()
	return c, err
}

// ReadBytes fills b with the bytes already queued by the hardware and returns
// the number of bytes read. It stops at the first read attempt that would
// block and therefore never waits for more input to arrive.
func ReadBytes(b []byte) int {
	var (
		g = guard()
		n int
	)

	for n < len(b) {
		c, err := g.Lock().TryReceive()
		g.Unlock()
		if err != nil {
			break
		}

		b[n] = c
		n++
	}

	return n
}
