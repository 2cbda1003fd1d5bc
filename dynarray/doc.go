// Package dynarray provides a growable random-access array.
//
// An Array stores elements of a single type contiguously and addresses them
// by zero-based index. The backing storage is distinct from the logical
// element count: Size reports only occupied slots, and indices outside
// [0, Size()) are rejected regardless of allocated capacity.
//
// Complexity:
//   - Get, Set, Size: O(1)
//   - Append: amortized O(1); the backing storage grows geometrically and
//     never shrinks
//   - Add, Remove at index i: O(n-i) due to element shifting
//
// Basic usage:
//
//	a := dynarray.New[int]()
//	a.Append(10)
//	a.Append(30)
//	_ = a.Add(1, 20)        // [10 20 30]
//	v, _ := a.Get(1)        // 20
//
// An Array is not safe for concurrent use. Callers adapting it to a
// concurrent context must serialize mutating operations against each other
// and against reads; the package provides no internal locking.
package dynarray
