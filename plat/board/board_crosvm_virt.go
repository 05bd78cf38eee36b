//go:build plat_crosvm_virt

package board

import "github.com/kylin-x-kernel/axplat-crates/platform/crosvmvirt"

const exactlyOnePlatformTag = "plat_crosvm_virt"

// Name is the name of the selected platform.
const Name = crosvmvirt.Platform

type (
	Console = crosvmvirt.Console
	Psci    = crosvmvirt.Psci
	Init    = crosvmvirt.Init
)
