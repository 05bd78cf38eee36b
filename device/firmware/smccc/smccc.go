// Package smccc issues SMC Calling Convention requests to the hypervisor.
//
// Only the HVC conduit is supported since the callers are guest kernels.
// Bare-metal arm64 builds execute HVC #0; every other build gets a stand-in
// that reports NotSupported so hosted tests never trap.
package smccc

// Result is the value returned by the callee in x0.
type Result int64

// Standard SMCCC return codes.
const (
	Success           Result = 0
	NotSupported      Result = -1
	NotRequired       Result = -2
	InvalidParameters Result = -3
)

const (
	fastCall       = 1 << 31
	callConv64     = 1 << 30
	ownerShift     = 24
	ownerVendorHyp = 6
)

// VendorHypFastCall64 returns the function identifier of the 64-bit fast
// call fn owned by the vendor specific hypervisor service range.
func VendorHypFastCall64(fn uint32) uint32 {
	return fastCall | callConv64 | ownerVendorHyp<<ownerShift | fn&0xffff
}

var (
	// hvcFn performs the actual trap; mocked by tests.
	hvcFn = hvc
)

// Call invokes function id with up to three arguments and returns the value
// that the hypervisor placed in x0.
func Call(id uint32, a0, a1, a2 uintptr) Result {
	return Result(hvcFn(uintptr(id), a0, a1, a2))
}
