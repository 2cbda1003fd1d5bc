// Package btree provides a binary tree node and lazy depth-first
// traversals over it.
//
// The package deliberately does not own tree shape: callers construct Nodes
// and wire Left and Right directly, and the traversals only read the
// resulting graph. Preorder and Inorder return iterators that walk the tree
// on demand with an explicit stack, so traversal state lives on the heap
// and depth is bounded by tree height rather than goroutine stack.
//
// Basic usage:
//
//	root := btree.NewNode(10)
//	root.Left = btree.NewNode(20)
//	root.Right = btree.NewNode(30)
//
//	it := btree.Inorder(root)
//	for it.Next() {
//		fmt.Println(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		// the graph was not a tree
//	}
//
// Each traversal is a fresh, restartable read of the graph as it is at call
// time; mutating the shape mid-traversal has undefined ordering
// consequences. Traversals detect graphs that are not trees: a node
// reachable through more than one path (a shared child or a cycle) stops
// the walk with ErrInvalidNode.
package btree
