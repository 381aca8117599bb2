// Package ownership describes who releases objects stored in a container.
//
// A container holding a Borrowed destructor never touches the memory of the
// objects it stores; the caller keeps them. A container holding an Owned
// destructor calls its release function exactly once for every object that
// leaves the container, whether by removal or by teardown.
package ownership

import "fmt"

// Mode tells whether a container owns the objects stored in it.
type Mode uint8

const (
	// Borrow leaves stored objects with the caller.
	Borrow Mode = iota
	// Own transfers stored objects to the container.
	Own
)

func (m Mode) String() string {
	switch m {
	case Borrow:
		return "borrowed"
	case Own:
		return "owned"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Destructor is the ownership variant registered on a container.
// The zero value is Borrowed.
type Destructor[T any] struct {
	release func(T)
}

// Borrowed returns a Destructor that never releases anything.
func Borrowed[T any]() Destructor[T] {
	return Destructor[T]{}
}

// Owned returns a Destructor that hands every departing object to release.
func Owned[T any](release func(T)) Destructor[T] {
	if release == nil {
		panic("ownership: Owned requires a release function")
	}
	return Destructor[T]{release: release}
}

// Mode reports whether d owns the objects it is applied to.
func (d Destructor[T]) Mode() Mode {
	if d.release == nil {
		return Borrow
	}
	return Own
}

// Owns is shorthand for d.Mode() == Own.
func (d Destructor[T]) Owns() bool {
	return d.release != nil
}

// Release hands v to the release function if d is Owned.
func (d Destructor[T]) Release(v T) {
	if d.release != nil {
		d.release(v)
	}
}

func (d Destructor[T]) String() string {
	return d.Mode().String()
}
