package ns16550

import (
	"testing"

	"github.com/kylin-x-kernel/axplat-crates/kernel"
	"github.com/kylin-x-kernel/axplat-crates/kernel/sync"
)

type regWrite struct {
	reg uintptr
	val uint8
}

// mockUART emulates the NS16550 register file closely enough to exercise the
// driver: DLAB-banked divisor latches, a receive queue that drives LSR.DR and
// a transmitter that can report itself busy for a number of LSR polls after
// each byte.
type mockUART struct {
	t        *testing.T
	base     uintptr
	regShift uint

	lcr, ier, fcr, mcr uint8
	dll, dlm           uint8

	tx []byte
	rx []byte

	busyPolls int
	busyLeft  int
	lsrReads  int

	writes []regWrite
}

func newMockUART(t *testing.T, base uintptr, regShift uint) *mockUART {
	resetDriver()

	m := &mockUART{t: t, base: base, regShift: regShift}
	origRead, origWrite := mmioRead8Fn, mmioWrite8Fn
	mmioRead8Fn, mmioWrite8Fn = m.read, m.write

	t.Cleanup(func() {
		mmioRead8Fn, mmioWrite8Fn = origRead, origWrite
		resetDriver()
	})

	return m
}

func resetDriver() {
	uart = sync.LazyInit[sync.SpinNoIrq[SerialPort]]{}
}

func (m *mockUART) decode(addr uintptr) uintptr {
	off := addr - m.base
	if off&(1<<m.regShift-1) != 0 || off>>m.regShift > regLineStatus {
		m.t.Errorf("unexpected register access at 0x%x (base 0x%x, shift %d)", addr, m.base, m.regShift)
	}
	return off >> m.regShift
}

func (m *mockUART) dlab() bool {
	return m.lcr&lcrDLAB != 0
}

func (m *mockUART) read(addr uintptr) uint8 {
	switch m.decode(addr) {
	case regData:
		if m.dlab() {
			return m.dll
		}
		if len(m.rx) == 0 {
			return 0
		}
		c := m.rx[0]
		m.rx = m.rx[1:]
		return c
	case regIntEnable:
		if m.dlab() {
			return m.dlm
		}
		return m.ier
	case regLineCtrl:
		return m.lcr
	case regModemCtrl:
		return m.mcr
	case regLineStatus:
		m.lsrReads++
		var lsr uint8
		if len(m.rx) != 0 {
			lsr |= lsrDataReady
		}
		if m.busyLeft > 0 {
			m.busyLeft--
		} else {
			lsr |= lsrTHREmpty
		}
		return lsr
	}

	return 0
}

func (m *mockUART) write(addr uintptr, val uint8) {
	reg := m.decode(addr)
	m.writes = append(m.writes, regWrite{reg, val})

	switch reg {
	case regData:
		if m.dlab() {
			m.dll = val
			return
		}
		m.tx = append(m.tx, val)
		m.busyLeft = m.busyPolls
	case regIntEnable:
		if m.dlab() {
			m.dlm = val
			return
		}
		m.ier = val
	case regFifoCtrl:
		m.fcr = val
	case regLineCtrl:
		m.lcr = val
	case regModemCtrl:
		m.mcr = val
	}
}

func expectPanic(t *testing.T, expErr *kernel.Error, fn func()) {
	t.Helper()
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("expected a panic with %q", expErr.Message)
		}
		if err != expErr {
			t.Fatalf("expected panic with %v; got %v", expErr, err)
		}
	}()

	fn()
}
