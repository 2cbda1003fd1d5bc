package dynarray

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index falls outside [0, Size()).
// Out-of-range indices are always rejected, never clamped.
var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a growable random-access sequence. The zero value is not usable;
// construct with New or WithCapacity.
type Array[T any] struct {
	elems []T
}

// New creates an empty array.
func New[T any]() *Array[T] {
	return &Array[T]{}
}

// WithCapacity creates an empty array with storage pre-allocated for n
// elements. This does not limit growth, it only avoids early reallocations.
func WithCapacity[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}
	return &Array[T]{elems: make([]T, 0, n)}
}

// Size returns the number of occupied slots.
func (a *Array[T]) Size() int {
	return len(a.elems)
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return len(a.elems) == 0
}

// checkIndex validates i against the occupied range.
func (a *Array[T]) checkIndex(i int) error {
	if i < 0 || i >= len(a.elems) {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, len(a.elems))
	}
	return nil
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) (T, error) {
	if err := a.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return a.elems[i], nil
}

// Set overwrites the element at index i.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	a.elems[i] = v
	return nil
}

// Append places v at position Size(). Amortized O(1).
func (a *Array[T]) Append(v T) {
	a.elems = append(a.elems, v)
}

// Add inserts v at index i, shifting the elements at [i, Size()) one
// position toward the tail. The index must address an existing element, so
// Add cannot target position Size(); use Append to place an element at the
// end. O(n-i).
func (a *Array[T]) Add(i int, v T) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	var zero T
	a.elems = append(a.elems, zero)
	copy(a.elems[i+1:], a.elems[i:])
	a.elems[i] = v
	return nil
}

// Remove deletes the element at index i, shifting the elements at
// (i, Size()) one position toward the head. O(n-i).
func (a *Array[T]) Remove(i int) error {
	if err := a.checkIndex(i); err != nil {
		return err
	}
	last := len(a.elems) - 1
	copy(a.elems[i:], a.elems[i+1:])
	var zero T
	a.elems[last] = zero // drop the reference so it can be collected
	a.elems = a.elems[:last]
	return nil
}

// Clear removes every element while keeping the allocated capacity.
func (a *Array[T]) Clear() {
	clear(a.elems)
	a.elems = a.elems[:0]
}
