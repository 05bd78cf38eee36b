// Package cpu exposes the handful of privileged CPU operations needed by the
// platform layer: masking local interrupt delivery and halting the core.
//
// Real implementations are written in assembly and are only compiled for
// bare-metal builds (the baremetal build tag). Hosted builds, which is what
// go test produces, get inert stand-ins so that code using these functions
// can be exercised in user space.
package cpu

// IRQEnabled is the value returned by SaveFlagsAndDisableInterrupts in
// hosted builds. It mirrors the state of a core with interrupts enabled.
const IRQEnabled uintptr = 1
