// Package linkedlist provides a singly linked list addressed by traversal
// from the head.
//
// A List owns a chain of Nodes, each holding one value and a reference to
// its successor. The list keeps no length counter; size is derived by
// walking the chain, and every positional operation resolves its target the
// same way, so an operation at position p costs O(p).
//
// Positional mutation is expressed relative to an anchor node: InsertAfter
// and DeleteAfter act on the node following the anchor, and the sentinel
// position -1 anchors before the head, which is how the head itself is
// prepended or removed. InsertAtHead and DeleteAtHead are sugar for the
// sentinel form.
//
// Basic usage:
//
//	l := linkedlist.New("a", "b", "c")
//	l.InsertAtHead("z")          // z -> a -> b -> c
//	_ = l.InsertAfter(1, "q")    // z -> a -> q -> b -> c
//	vals := l.ToSlice()
//
// A List is not safe for concurrent use; callers must serialize mutation
// against reads and against other mutation.
package linkedlist
