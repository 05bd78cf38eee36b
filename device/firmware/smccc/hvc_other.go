//go:build !(baremetal && arm64)

package smccc

func hvc(_, _, _, _ uintptr) int64 {
	return int64(NotSupported)
}
