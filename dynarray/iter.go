package dynarray

// Iterator walks an array's elements in index order, from 0 to Size()-1.
//
// Iteration is lazy and reads the live array, not a snapshot: each call to
// Values starts a fresh traversal of the array as it is at that moment.
// Mutating the array while an iterator is in progress has undefined
// ordering consequences; materialize with ToSlice first if that matters.
type Iterator[T any] struct {
	arr *Array[T]
	idx int
}

// Values returns a fresh iterator over the elements in index order.
func (a *Array[T]) Values() *Iterator[T] {
	return &Iterator[T]{arr: a, idx: -1}
}

// Next advances to the next element.
// Returns true if there is an element, false if iteration is complete.
func (it *Iterator[T]) Next() bool {
	it.idx++
	return it.idx < len(it.arr.elems)
}

// Value returns the current element.
func (it *Iterator[T]) Value() T {
	return it.arr.elems[it.idx]
}

// Index returns the index of the current element.
func (it *Iterator[T]) Index() int {
	return it.idx
}

// ToSlice eagerly copies the elements into a new slice in index order.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, len(a.elems))
	copy(out, a.elems)
	return out
}
