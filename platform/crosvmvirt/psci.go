package crosvmvirt

import (
	"github.com/kylin-x-kernel/axplat-crates/device/firmware/smccc"
	"github.com/kylin-x-kernel/axplat-crates/kernel"
)

// Vendor hypervisor service calls implemented by protected KVM. Both take
// the IPA of a single page in x1.
const (
	memShareFn   = 3
	memUnshareFn = 4
)

var (
	// Mocked by tests.
	callFn = smccc.Call

	errShareFailed   = &kernel.Error{Module: "crosvm-virt", Message: "MEM_SHARE hypercall failed"}
	errUnshareFailed = &kernel.Error{Module: "crosvm-virt", Message: "MEM_UNSHARE hypercall failed"}
)

// Psci is the firmware interface binding.
type Psci struct{}

// ShareDMABuffer asks the host to map every page of the region
// [physAddr, physAddr+size) so that it can be used for DMA.
func (Psci) ShareDMABuffer(physAddr, size uintptr) {
	hypercallPerPage(memShareFn, physAddr, size, errShareFailed)
}

// UnshareDMABuffer revokes host access to every page of the region
// [physAddr, physAddr+size).
func (Psci) UnshareDMABuffer(physAddr, size uintptr) {
	hypercallPerPage(memUnshareFn, physAddr, size, errUnshareFailed)
}

// hypercallPerPage issues fn once per page. The hypervisor rejects requests
// it cannot honour; that leaves guest and host disagreeing about the buffer,
// which is unrecoverable.
func hypercallPerPage(fn uint32, physAddr, size uintptr, failErr *kernel.Error) {
	id := smccc.VendorHypFastCall64(fn)
	pages := size / PageSize
	if size%PageSize != 0 {
		pages++
	}

	addr := physAddr
	for ; pages > 0; pages-- {
		if res := callFn(id, addr, 0, 0); res != smccc.Success {
			panic(failErr)
		}
		addr += PageSize
	}
}
