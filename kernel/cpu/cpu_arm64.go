//go:build baremetal && arm64

package cpu

// EnableInterrupts unmasks IRQ delivery on the current core (DAIF.I = 0).
func EnableInterrupts()

// DisableInterrupts masks IRQ delivery on the current core (DAIF.I = 1).
func DisableInterrupts()

// SaveFlagsAndDisableInterrupts masks IRQ delivery on the current core and
// returns the previous contents of the DAIF register.
func SaveFlagsAndDisableInterrupts() uintptr

// RestoreFlags writes back a DAIF value obtained via
// SaveFlagsAndDisableInterrupts.
func RestoreFlags(flags uintptr)

// Halt masks interrupts and parks the core in a WFI loop. It never returns.
func Halt()
