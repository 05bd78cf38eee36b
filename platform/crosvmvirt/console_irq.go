//go:build irq

package crosvmvirt

// IRQNumber returns the interrupt line of the console UART.
func (Console) IRQNumber() (uint32, bool) {
	return UARTIRQ, true
}
