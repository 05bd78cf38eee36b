package sync

import "github.com/kylin-x-kernel/axplat-crates/kernel/cpu"

var (
	// Interrupt masking hooks; mocked by tests.
	saveFlagsAndDisableInterruptsFn = cpu.SaveFlagsAndDisableInterrupts
	restoreFlagsFn                  = cpu.RestoreFlags
)

// SpinNoIrq guards a value of type T with a spinlock that also masks
// interrupt delivery on the local core while held. Without the masking, an
// interrupt handler that tries to take a lock already held by the code it
// interrupted would spin forever.
//
// The zero value is an unlocked SpinNoIrq holding the zero value of T.
type SpinNoIrq[T any] struct {
	lock  Spinlock
	flags uintptr
	data  T
}

// Lock masks local interrupts, spins until the lock is acquired and returns a
// pointer to the guarded value. The pointer must not be used after the
// matching Unlock call.
func (l *SpinNoIrq[T]) Lock() *T {
	flags := saveFlagsAndDisableInterruptsFn()
	l.lock.Acquire()
	l.flags = flags
	return &l.data
}

// TryLock attempts to acquire the lock without spinning. On failure the
// interrupt state is restored and TryLock returns false.
func (l *SpinNoIrq[T]) TryLock() (*T, bool) {
	flags := saveFlagsAndDisableInterruptsFn()
	if !l.lock.TryToAcquire() {
		restoreFlagsFn(flags)
		return nil, false
	}

	l.flags = flags
	return &l.data, true
}

// Unlock releases the lock and restores the interrupt state that was active
// when Lock was called.
func (l *SpinNoIrq[T]) Unlock() {
	flags := l.flags
	l.lock.Release()
	restoreFlagsFn(flags)
}
