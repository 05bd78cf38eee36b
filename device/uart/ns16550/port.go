package ns16550

import (
	"github.com/kylin-x-kernel/axplat-crates/kernel"
	"github.com/kylin-x-kernel/axplat-crates/kernel/mmio"
)

// Register indices. The byte offset of a register is its index shifted left
// by the port's register stride.
const (
	regData       = 0 // RBR on read, THR on write, DLL when DLAB is set
	regIntEnable  = 1 // IER, DLM when DLAB is set
	regFifoCtrl   = 2 // FCR, write only
	regLineCtrl   = 3 // LCR
	regModemCtrl  = 4 // MCR
	regLineStatus = 5 // LSR
)

const (
	lsrDataReady = 1 << 0
	lsrTHREmpty  = 1 << 5

	lcrDLAB = 1 << 7
	lcr8N1  = 0x03

	// Enable FIFOs, clear both of them and set a 14-byte trigger level.
	fcrEnableAndClear = 0xc7

	// DTR, RTS and OUT2 (which gates the interrupt line on PC-style designs).
	mcrDTRRTSOut2 = 0x0b

	ierDisabled    = 0x00
	ierRxAvailable = 0x01

	// divisor38400 is the baud divisor for 38400 baud with a 1.8432 MHz
	// reference clock.
	divisor38400 = 3
)

var (
	// Register access hooks; mocked by tests.
	mmioRead8Fn  = mmio.Read8
	mmioWrite8Fn = mmio.Write8

	// ErrWouldBlock is returned by non-blocking reads when the receive FIFO
	// is empty. It is the expected result while the remote end is idle and
	// callers must treat it as routine.
	ErrWouldBlock = &kernel.Error{Module: "ns16550", Message: "no data available"}
)

// SerialPort provides register-level access to an NS16550A compatible UART
// that is mapped at a virtual address.
type SerialPort struct {
	base     uintptr
	regShift uint
}

// NewSerialPort returns a SerialPort for the UART whose registers start at
// base and are spaced 1<<regShift bytes apart. The device is not touched
// until Init is called.
func NewSerialPort(base uintptr, regShift uint) SerialPort {
	return SerialPort{base: base, regShift: regShift}
}

// Base returns the virtual base address of the port.
func (p *SerialPort) Base() uintptr {
	return p.base
}

func (p *SerialPort) read(reg uintptr) uint8 {
	return mmioRead8Fn(p.base + reg<<p.regShift)
}

func (p *SerialPort) write(reg uintptr, val uint8) {
	mmioWrite8Fn(p.base+reg<<p.regShift, val)
}

// Init runs the device initialisation sequence: 38400 baud, 8N1, FIFOs on
// and the receive-data interrupt enabled at the device.
func (p *SerialPort) Init() {
	p.write(regIntEnable, ierDisabled)

	p.write(regLineCtrl, lcrDLAB)
	p.write(regData, divisor38400&0xff)
	p.write(regIntEnable, divisor38400>>8)

	p.write(regLineCtrl, lcr8N1)
	p.write(regFifoCtrl, fcrEnableAndClear)
	p.write(regModemCtrl, mcrDTRRTSOut2)
	p.write(regIntEnable, ierRxAvailable)
}

// Send spins until the transmit holding register is empty and then writes b
// to it. The byte is sent as is.
func (p *SerialPort) Send(b byte) {
	for p.read(regLineStatus)&lsrTHREmpty == 0 {
	}

	p.write(regData, b)
}

// TryReceive returns the next byte from the receive FIFO or ErrWouldBlock if
// the FIFO is empty. It never waits.
func (p *SerialPort) TryReceive() (byte, *kernel.Error) {
	if p.read(regLineStatus)&lsrDataReady == 0 {
		return 0, ErrWouldBlock
	}

	return p.read(regData), nil
}
