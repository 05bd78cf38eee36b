package qemuvirtriscv64

import "testing"

func TestInitEarly(t *testing.T) {
	defer func(orig func(uintptr, uint)) { uartInitFn = orig }(uartInitFn)

	var gotBase uintptr
	uartInitFn = func(base uintptr, regShift uint) {
		gotBase = base
		if regShift != 0 {
			t.Errorf("expected byte-spaced registers; got shift %d", regShift)
		}
	}

	Init{}.InitEarly(0, 0)
	Init{}.InitLater(0, 0)

	if exp := uintptr(0xffff_ffc0_1000_0000); gotBase != exp {
		t.Fatalf("expected UART base 0x%x; got 0x%x", exp, gotBase)
	}
}

func TestPsciIsNoOp(t *testing.T) {
	// Must neither panic nor touch hardware.
	Psci{}.ShareDMABuffer(0x8000_0000, 0x2000)
	Psci{}.UnshareDMABuffer(0x8000_0000, 0x2000)
}

func TestConsoleBinding(t *testing.T) {
	var _ interface {
		WriteBytes([]byte)
		ReadBytes([]byte) int
	} = Console{}
}
