package kfmt

import (
	"github.com/kylin-x-kernel/axplat-crates/kernel"
	"github.com/kylin-x-kernel/axplat-crates/kernel/cpu"
)

const panicRule = "\n-----------------------------------\n"

var (
	// cpuHaltFn is mocked by tests and is automatically inlined by the compiler.
	cpuHaltFn = cpu.Halt

	errRuntimePanic = &kernel.Error{Module: "rt", Message: "unknown cause"}
)

// Panic prints the cause of a kernel panic to the active output sink and
// halts the CPU. Calls to Panic never return in bare-metal builds.
//
// Panic replaces runtime.gopanic in the kernel image, so panic(err) with a
// *kernel.Error anywhere in the kernel ends up here.
//
//go:redirect-from runtime.gopanic
func Panic(e interface{}) {
	if msg, ok := e.(string); ok {
		panicString(msg)
		return
	}

	Printf(panicRule)
	if err := panicCause(e); err != nil {
		Printf("[%s] unrecoverable error: %s\n", err.Module, err.Message)
	}
	Printf("*** kernel panic: system halted ***")
	Printf(panicRule)

	cpuHaltFn()
}

// panicCause returns the error reported for a panic value, or nil for values
// that carry no cause.
func panicCause(e interface{}) *kernel.Error {
	switch t := e.(type) {
	case *kernel.Error:
		return t
	case error:
		errRuntimePanic.Message = t.Error()
		return errRuntimePanic
	default:
		return nil
	}
}

// panicString replaces runtime.throw, which reports fatal runtime errors
// with a plain message.
//
//go:redirect-from runtime.throw
func panicString(msg string) {
	errRuntimePanic.Message = msg
	Panic(errRuntimePanic)
}
