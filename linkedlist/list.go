package linkedlist

import (
	"errors"
	"fmt"
)

var (
	// ErrPositionUnreachable is returned when a positional operation names
	// a position no node occupies.
	ErrPositionUnreachable = errors.New("position unreachable")

	// ErrEmptyList is returned when the head of an empty list is deleted.
	ErrEmptyList = errors.New("empty list")
)

// List is a singly linked list holding only a head reference.
type List[T any] struct {
	head *Node[T]
}

// New builds a list whose chain holds values in argument order; the first
// value becomes the head.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for i := len(values) - 1; i >= 0; i-- {
		l.head = &Node[T]{value: values[i], next: l.head}
	}
	return l
}

// Find returns the node at zero-based pos by walking from the head. It
// returns nil, not an error, when pos is negative or past the end of the
// chain. O(pos).
func (l *List[T]) Find(pos int) *Node[T] {
	if pos < 0 {
		return nil
	}
	n := l.head
	for i := 0; i < pos && n != nil; i++ {
		n = n.next
	}
	return n
}

// Len counts the nodes by walking the chain. O(n).
func (l *List[T]) Len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no head.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// InsertAfter inserts a new node holding v immediately after the node at
// pos. The sentinel pos == -1 inserts before the head, making the new node
// the head; that form cannot fail. Any other pos must resolve to an
// existing node or ErrPositionUnreachable is returned. O(pos).
func (l *List[T]) InsertAfter(pos int, v T) error {
	if pos == -1 {
		l.head = &Node[T]{value: v, next: l.head}
		return nil
	}
	n := l.Find(pos)
	if n == nil {
		return fmt.Errorf("%w: position %d", ErrPositionUnreachable, pos)
	}
	n.next = &Node[T]{value: v, next: n.next}
	return nil
}

// InsertAtHead prepends v; the new node becomes the head.
func (l *List[T]) InsertAtHead(v T) {
	l.head = &Node[T]{value: v, next: l.head}
}

// DeleteAfter removes the node immediately following the node at pos. The
// sentinel pos == -1 removes the head itself and returns ErrEmptyList when
// there is no head to remove. For pos >= 0 the anchor node must exist or
// ErrPositionUnreachable is returned; an anchor with no successor is a
// no-op, since there is nothing past the tail to delete. O(pos).
func (l *List[T]) DeleteAfter(pos int) error {
	if pos == -1 {
		if l.head == nil {
			return ErrEmptyList
		}
		l.head = l.head.next
		return nil
	}
	n := l.Find(pos)
	if n == nil {
		return fmt.Errorf("%w: position %d", ErrPositionUnreachable, pos)
	}
	if n.next != nil {
		n.next = n.next.next
	}
	return nil
}

// DeleteAtHead removes the head node. Returns ErrEmptyList when the list is
// empty; callers that cannot tolerate the error should check IsEmpty first.
func (l *List[T]) DeleteAtHead() error {
	return l.DeleteAfter(-1)
}

// Clear unlinks every node, leaving the list empty.
func (l *List[T]) Clear() {
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.head = nil
}
