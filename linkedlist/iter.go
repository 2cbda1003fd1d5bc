package linkedlist

// NodeIterator walks the chain's nodes from head to tail.
//
// Iteration is lazy and reads the live chain: each call to Nodes starts a
// fresh traversal reflecting the list at that moment. Splicing nodes in or
// out mid-traversal has undefined ordering consequences.
type NodeIterator[T any] struct {
	next *Node[T]
	cur  *Node[T]
}

// Nodes returns a fresh iterator over the chain's nodes.
func (l *List[T]) Nodes() *NodeIterator[T] {
	return &NodeIterator[T]{next: l.head}
}

// Next advances to the next node.
// Returns true if there is a node, false if iteration is complete.
func (it *NodeIterator[T]) Next() bool {
	if it.next == nil {
		return false
	}
	it.cur = it.next
	it.next = it.next.next
	return true
}

// Node returns the current node.
func (it *NodeIterator[T]) Node() *Node[T] {
	return it.cur
}

// Iterator walks the chain's values from head to tail. It is the value
// projection of NodeIterator.
type Iterator[T any] struct {
	nodes NodeIterator[T]
}

// Values returns a fresh iterator over the chain's values.
func (l *List[T]) Values() *Iterator[T] {
	return &Iterator[T]{nodes: NodeIterator[T]{next: l.head}}
}

// Next advances to the next value.
// Returns true if there is a value, false if iteration is complete.
func (it *Iterator[T]) Next() bool {
	return it.nodes.Next()
}

// Value returns the current value.
func (it *Iterator[T]) Value() T {
	return it.nodes.cur.value
}

// ToSlice eagerly copies the chain's values into a slice in head-to-tail
// order. An empty list yields an empty, non-nil slice.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
