//go:build plat_dummy

package board

import "github.com/kylin-x-kernel/axplat-crates/platform/dummy"

const exactlyOnePlatformTag = "plat_dummy"

// Name is the name of the selected platform.
const Name = dummy.Platform

type (
	Console = dummy.Console
	Psci    = dummy.Psci
	Init    = dummy.Init
)
