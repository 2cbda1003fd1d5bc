package btree

import "errors"

// ErrInvalidNode reports a structurally invalid tree: a node reachable
// through more than one path, meaning a shared child or a cycle.
var ErrInvalidNode = errors.New("invalid tree node")

type order int

const (
	preorder order = iota
	inorder
)

// Iterator walks a tree lazily in a fixed depth-first order. It performs no
// mutation; a partially consumed iterator can simply be abandoned.
type Iterator[T any] struct {
	order order
	stack []*Node[T]
	cur   *Node[T] // pending descent pointer (inorder only)
	value T
	seen  map[*Node[T]]struct{}
	err   error
}

// Preorder returns an iterator yielding values in root, left, right order.
// A nil root yields an empty sequence with no error.
func Preorder[T any](root *Node[T]) *Iterator[T] {
	it := &Iterator[T]{order: preorder, seen: make(map[*Node[T]]struct{})}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

// Inorder returns an iterator yielding values in left, root, right order.
// A nil root yields an empty sequence with no error.
func Inorder[T any](root *Node[T]) *Iterator[T] {
	return &Iterator[T]{order: inorder, cur: root, seen: make(map[*Node[T]]struct{})}
}

// Next advances to the next value.
// Returns true if there is a value, false if the traversal is exhausted or
// stopped on an invalid node; Err distinguishes the two.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.order == preorder {
		return it.nextPre()
	}
	return it.nextIn()
}

func (it *Iterator[T]) nextPre() bool {
	if len(it.stack) == 0 {
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	if !it.visit(n) {
		return false
	}
	// Right is pushed first so the left subtree pops first.
	if n.Right != nil {
		it.stack = append(it.stack, n.Right)
	}
	if n.Left != nil {
		it.stack = append(it.stack, n.Left)
	}
	it.value = n.Value
	return true
}

func (it *Iterator[T]) nextIn() bool {
	for it.cur != nil {
		if !it.visit(it.cur) {
			return false
		}
		it.stack = append(it.stack, it.cur)
		it.cur = it.cur.Left
	}
	if len(it.stack) == 0 {
		return false
	}
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	it.cur = n.Right
	it.value = n.Value
	return true
}

// visit records n as reached, failing the traversal if it was reached
// before.
func (it *Iterator[T]) visit(n *Node[T]) bool {
	if _, dup := it.seen[n]; dup {
		it.err = ErrInvalidNode
		it.stack = nil
		it.cur = nil
		return false
	}
	it.seen[n] = struct{}{}
	return true
}

// Value returns the value produced by the last successful Next.
func (it *Iterator[T]) Value() T {
	return it.value
}

// Err returns ErrInvalidNode if the traversal stopped on a structurally
// invalid node, nil otherwise.
func (it *Iterator[T]) Err() error {
	return it.err
}

// PreorderValues materializes a preorder traversal into a slice.
func PreorderValues[T any](root *Node[T]) ([]T, error) {
	return collect(Preorder(root))
}

// InorderValues materializes an inorder traversal into a slice.
func InorderValues[T any](root *Node[T]) ([]T, error) {
	return collect(Inorder(root))
}

func collect[T any](it *Iterator[T]) ([]T, error) {
	out := make([]T, 0)
	for it.Next() {
		out = append(out, it.Value())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
