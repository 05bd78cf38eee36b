// Package psci declares the guest/host memory sharing interface and binds its
// operations to the platform selected by the plat_* build tag.
//
// Callers must pass page-aligned regions that they own. Nothing is validated
// on the guest side; the host is responsible for rejecting bad requests.
package psci

import "github.com/kylin-x-kernel/axplat-crates/plat/board"

// Interface is the firmware contract that every platform implements.
type Interface interface {
	// ShareDMABuffer tells the host that the region may be used for DMA
	// between guest and host.
	ShareDMABuffer(physAddr, size uintptr)

	// UnshareDMABuffer tells the host that the region is private to the
	// guest again.
	UnshareDMABuffer(physAddr, size uintptr)
}

var _ Interface = board.Psci{}

// ShareDMABuffer tells the host that [physAddr, physAddr+size) is shared.
func ShareDMABuffer(physAddr, size uintptr) {
	board.Psci{}.ShareDMABuffer(physAddr, size)
}

// UnshareDMABuffer tells the host that [physAddr, physAddr+size) is no
// longer shared.
func UnshareDMABuffer(physAddr, size uintptr) {
	board.Psci{}.UnshareDMABuffer(physAddr, size)
}
