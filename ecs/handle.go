package ecs

import "sync"

// Handle is an opaque, comparable identifier scoped to some user-defined
// domain T. The phantom type parameter keeps handles from unrelated
// allocators from being mixed up at compile time.
type Handle[T any] uint32

// Index returns the raw index backing the handle.
func (h Handle[T]) Index() uint32 {
	return uint32(h)
}

// HandleAllocator hands out Handle[T] values with last-in-first-out index
// recycling, the same discipline the EntityManager uses for entities.
type HandleAllocator[T any] struct {
	mu   sync.RWMutex
	next uint32
	free []Handle[T]
	used bitset
}

// NewHandleAllocator creates an empty allocator.
func NewHandleAllocator[T any]() *HandleAllocator[T] {
	return &HandleAllocator[T]{}
}

// Acquire returns a fresh handle, reusing the most recently released index
// when one is available.
func (a *HandleAllocator[T]) Acquire() Handle[T] {
	a.mu.Lock()
	defer a.mu.Unlock()

	var h Handle[T]
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		h = Handle[T](a.next)
		a.next++
	}
	a.used.set(uint32(h))
	return h
}

// Release returns the handle's index to the free list. Releasing a handle
// that is not currently in use is a no-op and returns false.
func (a *HandleAllocator[T]) Release(h Handle[T]) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.used.test(uint32(h)) {
		return false
	}
	a.used.unset(uint32(h))
	a.free = append(a.free, h)
	return true
}

// InUse reports whether the handle is currently acquired.
func (a *HandleAllocator[T]) InUse(h Handle[T]) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.used.test(uint32(h))
}

// Count returns the number of handles currently in use.
func (a *HandleAllocator[T]) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.used.count()
}

// Clear resets the allocator to its initial empty state.
func (a *HandleAllocator[T]) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next = 0
	a.free = a.free[:0]
	a.used.reset()
}
