//go:build irq

package dummy

// IRQNumber reports that the console has no interrupt line.
func (Console) IRQNumber() (uint32, bool) {
	return 0, false
}
