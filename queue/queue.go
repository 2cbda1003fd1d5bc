// Package queue provides a FIFO queue backed by a dynamic array. Index 0 is
// the front, the highest occupied index the back; enqueue appends at the
// back and dequeue shifts from the front. The array is held rather than
// embedded so positional operations cannot leak through the queue's
// interface and violate FIFO order. Not safe for concurrent use.
package queue

import "github.com/dshills/collections/dynarray"

// Queue is a first-in-first-out container.
type Queue[T any] struct {
	arr *dynarray.Array[T]
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{arr: dynarray.New[T]()}
}

// Enqueue places v at the back of the queue. Amortized O(1).
func (q *Queue[T]) Enqueue(v T) {
	q.arr.Append(v)
}

// Dequeue removes and returns the front value. On an empty queue it returns
// the zero value and false without modifying anything. O(n) due to the
// front shift.
func (q *Queue[T]) Dequeue() (T, bool) {
	v, err := q.arr.Get(0)
	if err != nil {
		var zero T
		return zero, false
	}
	_ = q.arr.Remove(0) // Get saw index 0, so this succeeds
	return v, true
}

// Peek returns the front value without removing it. The boolean is false
// when the queue is empty; an empty queue is not an error condition.
func (q *Queue[T]) Peek() (T, bool) {
	v, err := q.arr.Get(0)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// Len returns the number of queued values. O(1).
func (q *Queue[T]) Len() int {
	return q.arr.Size()
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.arr.IsEmpty()
}

// ToSlice copies the values into a slice, front first.
func (q *Queue[T]) ToSlice() []T {
	return q.arr.ToSlice()
}
