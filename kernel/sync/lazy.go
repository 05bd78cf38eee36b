package sync

import (
	"sync/atomic"

	"github.com/kylin-x-kernel/axplat-crates/kernel"
)

const (
	lazyUninit uint32 = iota
	lazyInitializing
	lazyReady
)

var (
	errLazyNotInit     = &kernel.Error{Module: "sync", Message: "lazy value accessed before initialization"}
	errLazyAlreadyInit = &kernel.Error{Module: "sync", Message: "lazy value initialized twice"}
)

// LazyInit holds a value that does not exist until InitOnce is called. After
// InitOnce completes, the identity of the value never changes. The value is
// stored inline so no memory is allocated.
type LazyInit[T any] struct {
	state uint32
	value T
}

// InitOnce initializes the value in place by invoking initFn with a pointer to
// the zeroed storage. Calling InitOnce more than once panics. If initFn
// panics, the value is zeroed again and InitOnce may be retried.
func (l *LazyInit[T]) InitOnce(initFn func(*T)) {
	if !atomic.CompareAndSwapUint32(&l.state, lazyUninit, lazyInitializing) {
		panic(errLazyAlreadyInit)
	}

	defer func() {
		if atomic.LoadUint32(&l.state) != lazyReady {
			var zero T
			l.value = zero
			atomic.StoreUint32(&l.state, lazyUninit)
		}
	}()

	initFn(&l.value)
	atomic.StoreUint32(&l.state, lazyReady)
}

// IsInit returns true if InitOnce has completed.
func (l *LazyInit[T]) IsInit() bool {
	return atomic.LoadUint32(&l.state) == lazyReady
}

// Get returns a pointer to the initialized value. Calling Get before InitOnce
// has completed panics.
func (l *LazyInit[T]) Get() *T {
	if atomic.LoadUint32(&l.state) != lazyReady {
		panic(errLazyNotInit)
	}

	return &l.value
}
