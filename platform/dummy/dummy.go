// Package dummy provides platform bindings that need no hardware. The console
// loops written bytes back as input, which lets hosted builds observe
// everything the kernel prints.
package dummy

import "github.com/kylin-x-kernel/axplat-crates/kernel/sync"

//go:generate go run ../../tools/platconfig generate --input platform.toml --output config.go

// loopbackSize is the capacity of the console loopback. Writes that do not
// fit are dropped.
const loopbackSize = 4096

type loopback struct {
	buf        [loopbackSize]byte
	head, size int
}

var console sync.SpinNoIrq[loopback]

// Console is the console binding.
type Console struct{}

// WriteBytes queues b for reading back via ReadBytes.
func (Console) WriteBytes(b []byte) {
	lb := console.Lock()
	for _, c := range b {
		if lb.size == loopbackSize {
			break
		}
		lb.buf[(lb.head+lb.size)%loopbackSize] = c
		lb.size++
	}
	console.Unlock()
}

// ReadBytes drains up to len(b) previously written bytes into b.
func (Console) ReadBytes(b []byte) int {
	lb := console.Lock()
	n := 0
	for ; n < len(b) && lb.size > 0; n++ {
		b[n] = lb.buf[lb.head]
		lb.head = (lb.head + 1) % loopbackSize
		lb.size--
	}
	console.Unlock()
	return n
}

// Psci is the firmware interface binding. Both operations do nothing.
type Psci struct{}

// ShareDMABuffer does nothing.
func (Psci) ShareDMABuffer(physAddr, size uintptr) {}

// UnshareDMABuffer does nothing.
func (Psci) UnshareDMABuffer(physAddr, size uintptr) {}

// Init is the platform initialization binding. Both operations do nothing.
type Init struct{}

// InitEarly does nothing.
func (Init) InitEarly(cpuID int, arg uintptr) {}

// InitLater does nothing.
func (Init) InitLater(cpuID int, arg uintptr) {}
