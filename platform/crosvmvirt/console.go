// Package crosvmvirt binds the platform interfaces for the crosvm aarch64
// virtual machine. The guest runs under protected KVM, so memory handed to
// the host for DMA must be shared explicitly through hypervisor calls.
package crosvmvirt

import "github.com/kylin-x-kernel/axplat-crates/device/uart/ns16550"

// Console is the console binding. The serial port is an NS16550A.
type Console struct {
	ns16550.Console
}
