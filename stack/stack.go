// Package stack provides a LIFO stack backed by a singly linked list whose
// head is the top. The list is held rather than embedded so positional list
// operations cannot leak through the stack's interface and violate LIFO
// order. Not safe for concurrent use.
package stack

import "github.com/dshills/collections/linkedlist"

// Stack is a last-in-first-out container.
type Stack[T any] struct {
	list *linkedlist.List[T]
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{list: linkedlist.New[T]()}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.InsertAtHead(v)
}

// Peek returns the top value without removing it. The boolean is false when
// the stack is empty; an empty stack is not an error condition.
func (s *Stack[T]) Peek() (T, bool) {
	n := s.list.Find(0)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Value(), true
}

// Pop removes and returns the top value. On an empty stack it returns the
// zero value and false without modifying anything.
func (s *Stack[T]) Pop() (T, bool) {
	v, ok := s.Peek()
	if !ok {
		return v, false
	}
	_ = s.list.DeleteAtHead() // Peek saw a head, so this succeeds
	return v, true
}

// Len returns the number of stacked values. Derived by walking the backing
// chain, O(n).
func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

// ToSlice copies the values into a slice, top first.
func (s *Stack[T]) ToSlice() []T {
	return s.list.ToSlice()
}
