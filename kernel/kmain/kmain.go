package kmain

import (
	"github.com/kylin-x-kernel/axplat-crates/kernel"
	"github.com/kylin-x-kernel/axplat-crates/kernel/kfmt"
	"github.com/kylin-x-kernel/axplat-crates/plat/boot"
	"github.com/kylin-x-kernel/axplat-crates/plat/console"
)

var (
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

	platLog = kfmt.PrefixWriter{Sink: console.Writer{}, Prefix: []byte("[plat] ")}
)

// Kmain is the only Go symbol called by the boot assembly, which is not part
// of this module: the image is linked with external boot code that provides
// the entry point, the stack and the .goredirectstbl section. Kmain runs on
// the boot CPU with the MMU on and interrupts masked. cpuID is
// the hardware ID of the boot CPU and arg is the value the bootloader left
// in the first argument register (a device tree pointer on both
// supported boards).
//
// Kmain is not expected to return. If it does, the boot code halts the CPU.
//
//go:noinline
func Kmain(cpuID int, arg uintptr) {
	boot.InitEarly(cpuID, arg)

	// Anything printed before the console came up is flushed here.
	kfmt.SetOutputSink(console.Writer{})
	kfmt.Fprintf(&platLog, "platform: %s, boot cpu: %d, arg: 0x%x\n", boot.Platform(), cpuID, arg)

	boot.InitLater(cpuID, arg)

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating kfmt.Panic as dead-code and eliminating it.
	kfmt.Panic(errKmainReturned)
}
