//go:build irq

package qemuvirtriscv64

// IRQNumber returns the PLIC source of the console UART.
func (Console) IRQNumber() (uint32, bool) {
	return UARTIRQ, true
}
