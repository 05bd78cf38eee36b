// Package qemuvirtriscv64 binds the platform interfaces for the QEMU riscv64
// virt machine.
package qemuvirtriscv64

import "github.com/kylin-x-kernel/axplat-crates/device/uart/ns16550"

//go:generate go run ../../tools/platconfig generate --input platform.toml --output config.go

var (
	// Mocked by tests.
	uartInitFn = ns16550.InitEarlyWithStride
)

// PhysToVirt returns the linear-map virtual address of paddr.
func PhysToVirt(paddr uintptr) uintptr {
	return paddr + PhysVirtOffset
}

// Console is the console binding. The serial port is an NS16550A.
type Console struct {
	ns16550.Console
}

// Psci is the firmware interface binding. The machine has no hypervisor that
// needs to be told about DMA buffers, so both operations do nothing.
type Psci struct{}

// ShareDMABuffer does nothing; all guest memory is visible to devices.
func (Psci) ShareDMABuffer(physAddr, size uintptr) {}

// UnshareDMABuffer does nothing.
func (Psci) UnshareDMABuffer(physAddr, size uintptr) {}

// Init is the platform initialization binding.
type Init struct{}

// InitEarly brings up the console UART.
func (Init) InitEarly(cpuID int, arg uintptr) {
	uartInitFn(PhysToVirt(UARTPaddr), UARTRegShift)
}

// InitLater does nothing on this platform.
func (Init) InitLater(cpuID int, arg uintptr) {}
