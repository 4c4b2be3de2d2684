// Package arena provides slot storage with generational handles. A slot is
// acquired by Insert and released by the matching Remove; a handle issued
// for a slot is invalidated the moment the slot is released, so stale
// handles can never reach another occupant of the same slot.
package arena

import "strconv"

// Handle identifies one live slot. The zero handle is never issued.
type Handle uint64

const slotIndexBits = 32

func makeHandle(idx uint32, gen uint32) Handle {
	return Handle(uint64(gen)<<slotIndexBits | uint64(idx))
}

func (h Handle) slotIndex() uint32 {
	return uint32(h)
}

func (h Handle) generation() uint32 {
	return uint32(uint64(h) >> slotIndexBits)
}

// Valid reports whether the handle could ever have been issued.
func (h Handle) Valid() bool {
	return h != 0
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 10)
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena owns its values exclusively. The zero Arena is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Insert constructs the value in a slot and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		// Generations start at 1 so a live handle is never zero.
		a.slots = append(a.slots, slot[T]{gen: 1})
	}
	s := &a.slots[idx]
	s.value = v
	s.live = true
	a.count++
	return makeHandle(idx, s.gen)
}

// Get returns the value for a live handle, or nil if the handle is stale or
// was never issued. The pointer is valid only until the next Insert.
func (a *Arena[T]) Get(h Handle) *T {
	idx := h.slotIndex()
	if int(idx) >= len(a.slots) {
		return nil
	}
	s := &a.slots[idx]
	if !s.live || s.gen != h.generation() {
		return nil
	}
	return &s.value
}

// Remove releases the slot behind a live handle. Returns false for stale or
// unknown handles, which keeps double-release inert.
func (a *Arena[T]) Remove(h Handle) bool {
	idx := h.slotIndex()
	if int(idx) >= len(a.slots) {
		return false
	}
	s := &a.slots[idx]
	if !s.live || s.gen != h.generation() {
		return false
	}
	var zero T
	s.value = zero
	s.live = false
	s.gen++
	a.free = append(a.free, idx)
	a.count--
	return true
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each visits every live slot in slot order until fn returns false.
func (a *Arena[T]) Each(fn func(Handle, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(makeHandle(uint32(i), s.gen), &s.value) {
			return
		}
	}
}
