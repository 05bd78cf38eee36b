// Package board selects the platform that the kernel is built for.
//
// Exactly one platform build tag must be set:
//
//	plat_crosvm_virt        crosvm aarch64 guest (protected KVM)
//	plat_qemu_virt_riscv64  QEMU riscv64 virt machine
//	plat_dummy              no hardware; hosted builds and tests
//
// Each tag enables one file that aliases the chosen platform's binding types
// as Console, Psci and Init. The contract packages (plat/console, plat/psci,
// plat/boot) call methods on these aliases directly, so every platform call
// compiles to a static call into the board package.
//
// Building without a platform tag fails with an undefined identifier that
// names the problem. Building with more than one fails because the aliases
// and exactlyOnePlatformTag are redeclared.
package board
