package crosvmvirt

import "github.com/kylin-x-kernel/axplat-crates/device/uart/ns16550"

var (
	// Mocked by tests.
	uartInitFn = ns16550.InitEarlyWithStride
)

// Init is the platform initialization binding.
type Init struct{}

// InitEarly brings up the console UART so that the kernel can log as early
// as possible. It runs once, on the boot CPU.
func (Init) InitEarly(cpuID int, arg uintptr) {
	uartInitFn(PhysToVirt(UARTPaddr), UARTRegShift)
}

// InitLater has nothing to do on this platform; the console is polled.
func (Init) InitLater(cpuID int, arg uintptr) {}
