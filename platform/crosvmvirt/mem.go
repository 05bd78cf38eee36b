package crosvmvirt

//go:generate go run ../../tools/platconfig generate --input platform.toml --output config.go

// PhysToVirt returns the linear-map virtual address of paddr.
func PhysToVirt(paddr uintptr) uintptr {
	return paddr + PhysVirtOffset
}
