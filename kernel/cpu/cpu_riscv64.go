//go:build baremetal && riscv64

package cpu

// EnableInterrupts sets sstatus.SIE on the current hart.
func EnableInterrupts()

// DisableInterrupts clears sstatus.SIE on the current hart.
func DisableInterrupts()

// SaveFlagsAndDisableInterrupts clears sstatus.SIE and returns its previous
// value (either 0 or the SIE bit).
func SaveFlagsAndDisableInterrupts() uintptr

// RestoreFlags sets sstatus.SIE again if flags has the SIE bit set.
func RestoreFlags(flags uintptr)

// Halt clears sstatus.SIE and parks the hart in a WFI loop. It never returns.
func Halt()
