package linkedlist

// Node is one link of a singly linked chain. Each node is owned by exactly
// one predecessor, or by the list itself when it is the head; the chain is
// never cyclic. Nodes are created by list operations, not directly.
type Node[T any] struct {
	value T
	next  *Node[T]
}

// Value returns the element stored in the node.
func (n *Node[T]) Value() T {
	return n.value
}

// SetValue replaces the element stored in the node.
func (n *Node[T]) SetValue(v T) {
	n.value = v
}

// Next returns the successor node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}
