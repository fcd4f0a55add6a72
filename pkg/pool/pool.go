// Package pool provides a generational object pool addressed by typed handles.
//
// A Pool owns every value stored in it. Callers refer to values through
// Handle values, which are plain (index, generation) pairs and never keep a
// value alive. A handle stays valid until the slot it points at is freed;
// reusing the slot bumps its generation, so handles to the old occupant stop
// resolving instead of aliasing the new one.
package pool

import (
	"fmt"
	"iter"
)

// Handle refers to a slot in a Pool[T]. The zero value is the none handle.
type Handle[T any] struct {
	index      uint32
	generation uint32
}

// None returns the handle that never resolves.
func None[T any]() Handle[T] {
	return Handle[T]{}
}

// NewHandle builds a handle from its raw parts.
func NewHandle[T any](index, generation uint32) Handle[T] {
	return Handle[T]{index: index, generation: generation}
}

// IsNone reports whether h is the none handle.
func (h Handle[T]) IsNone() bool {
	return h.index == 0 && h.generation == 0
}

// IsSome reports whether h is not the none handle. It says nothing about
// whether the slot is still alive; use Pool.IsValid for that.
func (h Handle[T]) IsSome() bool {
	return !h.IsNone()
}

// Index returns the slot index.
func (h Handle[T]) Index() uint32 {
	return h.index
}

// Generation returns the slot generation the handle was issued for.
func (h Handle[T]) Generation() uint32 {
	return h.generation
}

func (h Handle[T]) String() string {
	if h.IsNone() {
		return "[none]"
	}
	return fmt.Sprintf("[%d:%d]", h.index, h.generation)
}

type slot[T any] struct {
	generation uint32
	occupied   bool
	value      T
}

// Pool is a slot-based store with free-list reuse and per-slot generation
// counters. Slot 0 is never handed out so the none handle cannot alias a
// live value.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New returns an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{slots: make([]slot[T], 1)}
}

// WithCapacity returns an empty pool with room for n values.
func WithCapacity[T any](n int) *Pool[T] {
	p := &Pool[T]{slots: make([]slot[T], 1, n+1)}
	return p
}

func (p *Pool[T]) lazyInit() {
	if len(p.slots) == 0 {
		p.slots = make([]slot[T], 1)
	}
}

// Spawn stores v and returns its handle. A freed slot is reused when one is
// available; otherwise the pool grows.
func (p *Pool[T]) Spawn(v T) Handle[T] {
	p.lazyInit()
	p.count++
	if n := len(p.free); n > 0 {
		index := p.free[n-1]
		p.free = p.free[:n-1]
		s := &p.slots[index]
		s.generation++
		s.occupied = true
		s.value = v
		return Handle[T]{index: index, generation: s.generation}
	}
	p.slots = append(p.slots, slot[T]{generation: 1, occupied: true, value: v})
	return Handle[T]{index: uint32(len(p.slots) - 1), generation: 1}
}

func (p *Pool[T]) lookup(h Handle[T]) *slot[T] {
	if h.IsNone() || int(h.index) >= len(p.slots) {
		return nil
	}
	s := &p.slots[h.index]
	if !s.occupied || s.generation != h.generation {
		return nil
	}
	return s
}

// IsValid reports whether h resolves to a live value.
func (p *Pool[T]) IsValid(h Handle[T]) bool {
	return p.lookup(h) != nil
}

// Borrow returns the value behind h. The second result is false for the none
// handle, a freed slot, or a handle from a previous generation.
func (p *Pool[T]) Borrow(h Handle[T]) (T, bool) {
	if s := p.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// BorrowMut returns a pointer to the stored value, or nil when h does not
// resolve. The pointer is invalidated by the next Spawn.
func (p *Pool[T]) BorrowMut(h Handle[T]) *T {
	if s := p.lookup(h); s != nil {
		return &s.value
	}
	return nil
}

// Free releases the slot behind h and returns the value it held. Freeing a
// handle that does not resolve is a no-op.
func (p *Pool[T]) Free(h Handle[T]) (T, bool) {
	var zero T
	s := p.lookup(h)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.occupied = false
	p.free = append(p.free, h.index)
	p.count--
	return v, true
}

// HandleAt returns the handle of the live value at index, or the none handle
// if that slot is empty.
func (p *Pool[T]) HandleAt(index uint32) Handle[T] {
	if int(index) >= len(p.slots) || index == 0 {
		return Handle[T]{}
	}
	s := &p.slots[index]
	if !s.occupied {
		return Handle[T]{}
	}
	return Handle[T]{index: index, generation: s.generation}
}

// Len returns the number of live values.
func (p *Pool[T]) Len() int {
	return p.count
}

// Cap returns the number of slots, live or free.
func (p *Pool[T]) Cap() int {
	if len(p.slots) == 0 {
		return 0
	}
	return len(p.slots) - 1
}

// All yields every live value with its handle in slot order. Values may be
// mutated through BorrowMut while iterating; spawning or freeing during the
// iteration is not supported.
func (p *Pool[T]) All() iter.Seq2[Handle[T], T] {
	return func(yield func(Handle[T], T) bool) {
		for i := 1; i < len(p.slots); i++ {
			s := &p.slots[i]
			if !s.occupied {
				continue
			}
			if !yield(Handle[T]{index: uint32(i), generation: s.generation}, s.value) {
				return
			}
		}
	}
}

// Values yields every live value in slot order.
func (p *Pool[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range p.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clear frees every slot. Generations are kept so outstanding handles stay
// invalid after the pool is refilled.
func (p *Pool[T]) Clear() {
	var zero T
	p.free = p.free[:0]
	for i := len(p.slots) - 1; i >= 1; i-- {
		s := &p.slots[i]
		if s.occupied {
			s.occupied = false
			s.value = zero
		}
		p.free = append(p.free, uint32(i))
	}
	p.count = 0
}
