package btree

// Node is one node of a caller-constructed binary tree. The fields are
// exported because shape ownership belongs to the caller: build nodes,
// assign Left and Right, and hand the root to a traversal. A nil child
// marks an absent subtree.
type Node[T any] struct {
	Value T
	Left  *Node[T]
	Right *Node[T]
}

// NewNode returns a leaf node holding v.
func NewNode[T any](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Count returns the number of nodes reachable from root. An empty tree
// counts zero. The graph must be a valid tree.
func Count[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	count := 0
	stack := []*Node[T]{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.Right != nil {
			stack = append(stack, n.Right)
		}
		if n.Left != nil {
			stack = append(stack, n.Left)
		}
	}
	return count
}

// Height returns the number of nodes on the longest root-to-leaf path. An
// empty tree has height zero. The graph must be a valid tree.
func Height[T any](root *Node[T]) int {
	if root == nil {
		return 0
	}
	type frame struct {
		node  *Node[T]
		depth int
	}
	maxDepth := 0
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > maxDepth {
			maxDepth = f.depth
		}
		if f.node.Left != nil {
			stack = append(stack, frame{f.node.Left, f.depth + 1})
		}
		if f.node.Right != nil {
			stack = append(stack, frame{f.node.Right, f.depth + 1})
		}
	}
	return maxDepth
}
