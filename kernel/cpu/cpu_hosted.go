//go:build !baremetal

package cpu

// EnableInterrupts is a no-op in hosted builds.
func EnableInterrupts() {}

// DisableInterrupts is a no-op in hosted builds.
func DisableInterrupts() {}

// SaveFlagsAndDisableInterrupts always reports IRQEnabled in hosted builds.
func SaveFlagsAndDisableInterrupts() uintptr { return IRQEnabled }

// RestoreFlags is a no-op in hosted builds.
func RestoreFlags(uintptr) {}

// Halt is a no-op in hosted builds. Callers must not rely on it returning in
// bare-metal builds.
func Halt() {}
