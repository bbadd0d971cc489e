package array2d

import (
	"iter"
	"unsafe"

	"github.com/katalvlaran/jagged/mem"
	"github.com/katalvlaran/jagged/safety"
)

// RowView is a non-owning, read-only view over exactly one row: a pointer, a
// length, and a borrowed safety token. It never owns memory; its lifetime is
// strictly bounded by the parent container's. Holding a view past the
// parent's disposal is caught by the token in checked builds and undefined
// behavior otherwise.
type RowView[T any] struct {
	ptr    unsafe.Pointer
	length int
	row    int
	token  safety.Token
}

// Len returns the number of elements in the row. Complexity: O(1).
func (v RowView[T]) Len() int { return v.length }

// RowIndex returns the index of the viewed row within its parent container.
func (v RowView[T]) RowIndex() int { return v.row }

// At returns element i. Panics with ErrElemIndex on bad indices and with the
// safety sentinels when the parent has been disposed; undefined behavior in
// unchecked builds. Complexity: O(1).
func (v RowView[T]) At(i int) T {
	v.token.CheckRead()
	if safety.Enabled && (i < 0 || i >= v.length) {
		panic(&ElemIndexError{Row: v.row, Index: i, Length: v.length})
	}

	return *(*T)(unsafe.Add(v.ptr, uintptr(i)*mem.SizeOf[T]()))
}

// All iterates the row's elements in order, yielding (index, element). The
// token is re-checked on every step, so disposal of the parent mid-iteration
// fails fast instead of reading freed memory.
func (v RowView[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			v.token.CheckRead()
			e := *(*T)(unsafe.Add(v.ptr, uintptr(i)*mem.SizeOf[T]()))
			if !yield(i, e) {
				return
			}
		}
	}
}
