package dynarray

import (
	"errors"
	"reflect"
	"testing"
	"testing/quick"
)

func TestNew(t *testing.T) {
	a := New[int]()
	if a.Size() != 0 {
		t.Errorf("new array should have size 0, got %d", a.Size())
	}
	if !a.IsEmpty() {
		t.Error("new array should be empty")
	}
	if got := a.ToSlice(); len(got) != 0 {
		t.Errorf("new array ToSlice() should be empty, got %v", got)
	}
}

func TestWithCapacity(t *testing.T) {
	a := WithCapacity[int](16)
	if a.Size() != 0 {
		t.Errorf("pre-allocated array should have size 0, got %d", a.Size())
	}
	a.Append(1)
	if a.Size() != 1 {
		t.Errorf("size after append = %d, want 1", a.Size())
	}

	// Negative capacity is treated as zero, not an error.
	b := WithCapacity[int](-1)
	if b.Size() != 0 {
		t.Errorf("size = %d, want 0", b.Size())
	}
}

func TestAppendAndGet(t *testing.T) {
	a := New[int]()
	values := []int{5, 1, 4, 2, 3}
	for i, v := range values {
		a.Append(v)
		if a.Size() != i+1 {
			t.Fatalf("size after %d appends = %d, want %d", i+1, a.Size(), i+1)
		}
	}
	for i, want := range values {
		got, err := a.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("Get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestAppendOrderProperty(t *testing.T) {
	// Any sequence of appends is fully readable back in order.
	f := func(values []int) bool {
		a := New[int]()
		for _, v := range values {
			a.Append(v)
		}
		if a.Size() != len(values) {
			return false
		}
		for i, want := range values {
			got, err := a.Get(i)
			if err != nil || got != want {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestSet(t *testing.T) {
	a := New[string]()
	a.Append("a")
	a.Append("b")

	if err := a.Set(1, "z"); err != nil {
		t.Fatalf("Set(1) unexpected error: %v", err)
	}
	if got := a.ToSlice(); !reflect.DeepEqual(got, []string{"a", "z"}) {
		t.Errorf("after Set got %v, want [a z]", got)
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		index   int
		value   int
		want    []int
	}{
		{"insert at head", []int{2, 3}, 0, 1, []int{1, 2, 3}},
		{"insert in middle", []int{1, 3}, 1, 2, []int{1, 2, 3}},
		{"insert before tail", []int{1, 2, 4}, 2, 3, []int{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int]()
			for _, v := range tt.initial {
				a.Append(v)
			}
			if err := a.Add(tt.index, tt.value); err != nil {
				t.Fatalf("Add(%d, %d) unexpected error: %v", tt.index, tt.value, err)
			}
			if got := a.ToSlice(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddShiftsTail(t *testing.T) {
	a := New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		a.Append(v)
	}
	before := a.ToSlice()

	if err := a.Add(1, 99); err != nil {
		t.Fatalf("Add unexpected error: %v", err)
	}
	got, err := a.Get(1)
	if err != nil || got != 99 {
		t.Errorf("Get(1) = %d, %v, want 99, nil", got, err)
	}
	// Every element at j > 1 before the insert is now at j+1.
	for j := 1; j < len(before); j++ {
		after, err := a.Get(j + 1)
		if err != nil {
			t.Fatalf("Get(%d) unexpected error: %v", j+1, err)
		}
		if after != before[j] {
			t.Errorf("element %d shifted to %d: got %d, want %d", j, j+1, after, before[j])
		}
	}
}

func TestAddRejectsSize(t *testing.T) {
	// Insertion at the very end goes through Append, not Add.
	a := New[int]()
	a.Append(1)
	if err := a.Add(a.Size(), 2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Add(Size()) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name    string
		initial []int
		index   int
		want    []int
	}{
		{"remove head", []int{1, 2, 3}, 0, []int{2, 3}},
		{"remove middle", []int{1, 2, 3}, 1, []int{1, 3}},
		{"remove tail", []int{1, 2, 3}, 2, []int{1, 2}},
		{"remove only element", []int{7}, 0, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[int]()
			for _, v := range tt.initial {
				a.Append(v)
			}
			if err := a.Remove(tt.index); err != nil {
				t.Fatalf("Remove(%d) unexpected error: %v", tt.index, err)
			}
			if a.Size() != len(tt.initial)-1 {
				t.Errorf("size = %d, want %d", a.Size(), len(tt.initial)-1)
			}
			if got := a.ToSlice(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBounds(t *testing.T) {
	a := New[int]()
	a.Append(1)
	a.Append(2)

	for _, idx := range []int{-1, 2, 100} {
		if _, err := a.Get(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := a.Set(idx, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := a.Add(idx, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Add(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := a.Remove(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d) error = %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	// Failed operations leave the array untouched.
	if got := a.ToSlice(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("array mutated by failed operations: %v", got)
	}
}

func TestIterator(t *testing.T) {
	a := New[int]()
	for _, v := range []int{10, 20, 30} {
		a.Append(v)
	}

	var got []int
	var idx []int
	for it := a.Values(); it.Next(); {
		got = append(got, it.Value())
		idx = append(idx, it.Index())
	}
	if !reflect.DeepEqual(got, []int{10, 20, 30}) {
		t.Errorf("values = %v, want [10 20 30]", got)
	}
	if !reflect.DeepEqual(idx, []int{0, 1, 2}) {
		t.Errorf("indices = %v, want [0 1 2]", idx)
	}
}

func TestIteratorRestartable(t *testing.T) {
	a := New[int]()
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}

	first := a.ToSlice()
	second := a.ToSlice()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated materialization differs: %v vs %v", first, second)
	}

	// A fresh iterator reflects mutations made after the previous one.
	it := a.Values()
	for it.Next() {
	}
	a.Append(4)
	var got []int
	for it2 := a.Values(); it2.Next(); {
		got = append(got, it2.Value())
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Errorf("fresh traversal = %v, want [1 2 3 4]", got)
	}
}

func TestIteratorEmpty(t *testing.T) {
	it := New[int]().Values()
	if it.Next() {
		t.Error("iterator over empty array should be exhausted immediately")
	}
}

func TestClear(t *testing.T) {
	a := New[int]()
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}
	a.Clear()
	if !a.IsEmpty() {
		t.Error("cleared array should be empty")
	}
	a.Append(9)
	if got, _ := a.Get(0); got != 9 {
		t.Errorf("Get(0) after clear and append = %d, want 9", got)
	}
}
