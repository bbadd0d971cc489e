package array2d

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/katalvlaran/jagged/mem"
	"github.com/katalvlaran/jagged/safety"
)

// RowCount returns the number of rows. Zero for a non-created or disposed
// container. Complexity: O(1).
func (a *Array2D[T]) RowCount() int { return a.rowCount }

// IsCreated reports whether the container currently owns its buffers. False
// for the zero value and after Dispose/DisposeAsync, which are externally
// indistinguishable. Complexity: O(1).
func (a *Array2D[T]) IsCreated() bool { return a != nil && a.rows != nil }

// rowCheck validates a row index against the restricted range, classifying
// violations: outside the container entirely is an ordinary bounds error,
// inside the container but outside this view's partition is the distinct
// restricted-range error.
func (a *Array2D[T]) rowCheck(x int) error {
	if x >= a.minRow && x <= a.maxRow {
		return nil
	}
	if x < 0 || x >= a.rowCount {
		return &RowIndexError{Index: x, RowCount: a.rowCount}
	}

	return &RestrictedRangeError{Index: x, Min: a.minRow, Max: a.maxRow}
}

// mustRow panics with the rowCheck error, if any.
func (a *Array2D[T]) mustRow(x int) {
	if err := a.rowCheck(x); err != nil {
		panic(err)
	}
}

// mustElem panics unless y is a valid element index of row x.
func (a *Array2D[T]) mustElem(x, y int) {
	if n := a.lenTable()[x]; y < 0 || y >= n {
		panic(&ElemIndexError{Row: x, Index: y, Length: n})
	}
}

// Get returns element (x, y). Bounds and aliasing violations panic with
// errors wrapping ErrRowIndex, ErrRowRestricted, ErrElemIndex or the safety
// sentinels; in unchecked builds they are undefined behavior.
// Complexity: O(1).
func (a *Array2D[T]) Get(x, y int) T {
	a.token.CheckRead()
	if safety.Enabled {
		a.mustRow(x)
		a.mustElem(x, y)
	}

	return *(*T)(unsafe.Add(a.rowTable()[x], uintptr(y)*mem.SizeOf[T]()))
}

// Set stores v at element (x, y). Same failure modes as Get, plus write
// aliasing checks. Complexity: O(1).
func (a *Array2D[T]) Set(x, y int, v T) {
	a.token.CheckWrite()
	if safety.Enabled {
		a.mustRow(x)
		a.mustElem(x, y)
	}
	*(*T)(unsafe.Add(a.rowTable()[x], uintptr(y)*mem.SizeOf[T]())) = v
}

// RowLength returns the length of row x. Panics like Get on bad indices.
// Complexity: O(1).
func (a *Array2D[T]) RowLength(x int) int {
	a.token.CheckRead()
	if safety.Enabled {
		a.mustRow(x)
	}

	return a.lenTable()[x]
}

// Row returns a read-only, non-owning view over row x. The view borrows the
// container's safety token and must not outlive its buffers: disposal of the
// container invalidates every outstanding view.
// Complexity: O(1).
func (a *Array2D[T]) Row(x int) RowView[T] {
	a.token.CheckRead()
	if safety.Enabled {
		a.mustRow(x)
	}

	return RowView[T]{
		ptr:    a.rowTable()[x],
		length: a.lenTable()[x],
		row:    x,
		token:  a.token.Borrow(),
	}
}

// Restrict returns a view of the same container narrowed to rows
// [minRow..maxRow] (inclusive). The view shares buffers and safety token with
// the parent; indexed access outside the range fails with the distinct
// restricted-range error. Hand each data-parallel worker one disjoint view.
// Returns ErrDisposed or ErrRowIndex on bad arguments.
func (a *Array2D[T]) Restrict(minRow, maxRow int) (*Array2D[T], error) {
	if !a.IsCreated() {
		return nil, fmt.Errorf("array2d: restrict: %w", ErrDisposed)
	}
	if minRow < 0 || maxRow >= a.rowCount || minRow > maxRow {
		return nil, fmt.Errorf("array2d: restrict to [%d..%d] of %d rows: %w",
			minRow, maxRow, a.rowCount, ErrRowIndex)
	}
	v := *a
	v.minRow, v.maxRow = minRow, maxRow

	return &v, nil
}

// Equal reports whether a and b are views of the identical underlying
// allocation: same row-pointer table instance, equal row counts, and
// pairwise pointer-equal rows with equal lengths. Equality is "same storage",
// not "same contents". Complexity: O(rowCount).
func (a *Array2D[T]) Equal(b *Array2D[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.rowCount != b.rowCount {
		return false
	}
	if a.rows == nil {
		return true
	}
	art, brt := a.rowTable(), b.rowTable()
	alt, blt := a.lenTable(), b.lenTable()
	for i := range art {
		if art[i] != brt[i] || alt[i] != blt[i] {
			return false
		}
	}

	return true
}

// Rows iterates the view's permitted rows in order, yielding (index, RowView).
func (a *Array2D[T]) Rows() iter.Seq2[int, RowView[T]] {
	return func(yield func(int, RowView[T]) bool) {
		for x := a.minRow; x <= a.maxRow; x++ {
			if !yield(x, a.Row(x)) {
				return
			}
		}
	}
}
