// Package sequence provides a position-addressed, singly-linked sequence.
//
// Elements live in an arena owned by the Sequence and are chained by slot
// index. Slot 0 is a head sentinel that never holds a value. A Position
// names a link of the chain, that is the slot whose successor is the
// element the position refers to. Consequently:
//
//   - First() is the link out of the head sentinel.
//   - The end-position is the link out of the last element (or out of the
//     head sentinel when the sequence is empty).
//   - Insert(p, v) places v before the element at p and returns p itself,
//     which now refers to v.
//   - Remove(p) returns p itself, which now refers to the old successor.
//
// A position stays valid until the element before it is removed, that
// element is moved to the front, or the sequence is freed. Every slot
// carries a generation that is bumped when it is recycled or relocated, so
// stale positions are reported instead of silently aliasing another element.
package sequence

import (
	"errors"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/on-the-ground/mtftable/shared/ownership"
)

var (
	// ErrEndPosition is raised when an element is required but the
	// end-position was given.
	ErrEndPosition = errors.New("sequence: end position has no element")

	// ErrStalePosition is raised for positions whose link was removed,
	// recycled or relocated.
	ErrStalePosition = errors.New("sequence: stale position")

	// ErrForeignPosition is raised for positions produced by another sequence.
	ErrForeignPosition = errors.New("sequence: position belongs to another sequence")

	// ErrFreed is raised when a sequence is used after Free.
	ErrFreed = errors.New("sequence: use after free")
)

const (
	headSlot int32 = 0
	nilSlot  int32 = -1
)

var owners atomic.Uint64

// Position is an opaque handle on one link of a Sequence.
// The zero Position is not valid for any sequence.
type Position struct {
	owner uint64
	link  int32
	gen   uint32
}

type node[T any] struct {
	value T
	next  int32
	gen   uint32
}

// Sequence is an ordered collection of values navigable only through
// positions. It is not safe for concurrent use.
type Sequence[T any] struct {
	owner  uint64
	nodes  []node[T]
	free   []int32
	length int
	values ownership.Destructor[T]
}

// New returns an empty sequence that borrows the values stored in it.
func New[T any]() *Sequence[T] {
	return &Sequence[T]{
		owner: owners.Add(1),
		nodes: []node[T]{{next: nilSlot}},
	}
}

// SetValueDestructor replaces the ownership variant for values. It applies
// to every value removed from now on, including the ones already stored.
func (s *Sequence[T]) SetValueDestructor(d ownership.Destructor[T]) {
	s.mustBeLive()
	s.values = d
}

// First returns the position of the first element, which is the
// end-position when the sequence is empty.
func (s *Sequence[T]) First() Position {
	s.mustBeLive()
	return s.positionOf(headSlot)
}

// Next returns the position following p.
func (s *Sequence[T]) Next(p Position) Position {
	slot := s.elementAt(p)
	return s.positionOf(slot)
}

// IsEmpty reports whether the sequence holds no element.
func (s *Sequence[T]) IsEmpty() bool {
	s.mustBeLive()
	return s.length == 0
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int {
	s.mustBeLive()
	return s.length
}

// IsEnd reports whether p is the position after the last element.
func (s *Sequence[T]) IsEnd(p Position) bool {
	link := s.resolve(p)
	return s.nodes[link].next == nilSlot
}

// Insert places v immediately before the element at p, or appends it when
// p is the end-position, and returns the position of v.
func (s *Sequence[T]) Insert(p Position, v T) Position {
	link := s.resolve(p)
	slot := s.alloc(v)
	s.nodes[slot].next = s.nodes[link].next
	s.nodes[link].next = slot
	s.length++
	return s.positionOf(link)
}

// Remove unlinks the element at p, releases its value if the sequence owns
// it, and returns the position of the element that followed it.
func (s *Sequence[T]) Remove(p Position) Position {
	link := s.resolve(p)
	slot := s.nodes[link].next
	if slot == nilSlot {
		panic(fmt.Errorf("%w: remove", ErrEndPosition))
	}
	s.nodes[link].next = s.nodes[slot].next
	value := s.nodes[slot].value
	s.recycle(slot)
	s.length--

	// the chain is consistent before user code runs
	s.values.Release(value)
	return s.positionOf(link)
}

// Inspect returns the value at p without removing it.
func (s *Sequence[T]) Inspect(p Position) T {
	slot := s.elementAt(p)
	return s.nodes[slot].value
}

// MoveToFront relinks the element at p so that it becomes the first
// element. The value is not copied and the relative order of every other
// element is kept. It returns First().
func (s *Sequence[T]) MoveToFront(p Position) Position {
	link := s.resolve(p)
	slot := s.nodes[link].next
	if slot == nilSlot {
		panic(fmt.Errorf("%w: move to front", ErrEndPosition))
	}
	if link != headSlot {
		s.nodes[link].next = s.nodes[slot].next
		s.nodes[slot].next = s.nodes[headSlot].next
		s.nodes[headSlot].next = slot
		// positions on the link out of slot now name a different element
		s.nodes[slot].gen++
	}
	return s.positionOf(headSlot)
}

// All yields the values front to back. The sequence must not be modified
// during iteration.
func (s *Sequence[T]) All() iter.Seq[T] {
	s.mustBeLive()
	return func(yield func(T) bool) {
		for slot := s.nodes[headSlot].next; slot != nilSlot; slot = s.nodes[slot].next {
			if !yield(s.nodes[slot].value) {
				return
			}
		}
	}
}

// Free removes every element front to back, releasing owned values, and
// drops the arena. The sequence is unusable afterwards.
func (s *Sequence[T]) Free() {
	s.mustBeLive()
	for p := s.First(); !s.IsEnd(p); {
		p = s.Remove(p)
	}
	s.nodes = nil
	s.free = nil
}

func (s *Sequence[T]) mustBeLive() {
	if s.nodes == nil {
		panic(ErrFreed)
	}
}

func (s *Sequence[T]) positionOf(link int32) Position {
	return Position{owner: s.owner, link: link, gen: s.nodes[link].gen}
}

func (s *Sequence[T]) resolve(p Position) int32 {
	s.mustBeLive()
	if p.owner != s.owner {
		panic(fmt.Errorf("%w: owner %d, want %d", ErrForeignPosition, p.owner, s.owner))
	}
	if p.link < 0 || int(p.link) >= len(s.nodes) || s.nodes[p.link].gen != p.gen {
		panic(fmt.Errorf("%w: slot %d", ErrStalePosition, p.link))
	}
	return p.link
}

// elementAt returns the slot of the element p refers to.
func (s *Sequence[T]) elementAt(p Position) int32 {
	link := s.resolve(p)
	slot := s.nodes[link].next
	if slot == nilSlot {
		panic(ErrEndPosition)
	}
	return slot
}

func (s *Sequence[T]) alloc(v T) int32 {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		s.nodes[slot].value = v
		return slot
	}
	s.nodes = append(s.nodes, node[T]{value: v, next: nilSlot})
	return int32(len(s.nodes) - 1)
}

func (s *Sequence[T]) recycle(slot int32) {
	var zero T
	n := &s.nodes[slot]
	n.value = zero
	n.next = nilSlot
	n.gen++
	s.free = append(s.free, slot)
}
