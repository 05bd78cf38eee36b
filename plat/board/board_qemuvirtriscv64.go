//go:build plat_qemu_virt_riscv64

package board

import "github.com/kylin-x-kernel/axplat-crates/platform/qemuvirtriscv64"

const exactlyOnePlatformTag = "plat_qemu_virt_riscv64"

// Name is the name of the selected platform.
const Name = qemuvirtriscv64.Platform

type (
	Console = qemuvirtriscv64.Console
	Psci    = qemuvirtriscv64.Psci
	Init    = qemuvirtriscv64.Init
)
