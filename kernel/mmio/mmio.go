// Package mmio provides accessors for memory-mapped device registers.
package mmio

import "unsafe"

// Read8 loads the byte-wide register at the given virtual address.
//
//go:nosplit
func Read8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

// Write8 stores val into the byte-wide register at the given virtual address.
//
//go:nosplit
func Write8(addr uintptr, val uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = val
}

// Read32 loads the 32-bit register at the given virtual address.
//
//go:nosplit
func Read32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

// Write32 stores val into the 32-bit register at the given virtual address.
//
//go:nosplit
func Write32(addr uintptr, val uint32) {
	*(*uint32)(unsafe.Pointer(addr)) = val
}
