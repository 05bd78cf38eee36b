//go:build !plat_crosvm_virt && !plat_qemu_virt_riscv64 && !plat_dummy

package board

// No platform tag is set: stop the build on an undefined identifier that
// says so.
var _ = platform_not_selected_build_with_exactly_one_plat_tag
