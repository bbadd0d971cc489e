// Package array2d defines core types, options, and sentinel errors for the
// array2d subpackage of github.com/katalvlaran/jagged.
package array2d

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/katalvlaran/jagged/mem"
	"github.com/katalvlaran/jagged/safety"
)

// Sentinel errors for array2d operations.
var (
	// ErrRowCount indicates a negative row count.
	ErrRowCount = errors.New("array2d: row count must be non-negative")
	// ErrNegativeLength indicates a negative row length.
	ErrNegativeLength = errors.New("array2d: row length must be non-negative")
	// ErrRowIndex indicates a row index outside [0, rowCount).
	ErrRowIndex = errors.New("array2d: row index out of range")
	// ErrRowRestricted indicates a row index that is inside the container but
	// outside the restricted parallel range of this view.
	ErrRowRestricted = errors.New("array2d: row index outside restricted parallel range")
	// ErrElemIndex indicates an element index outside its row's bounds.
	ErrElemIndex = errors.New("array2d: element index out of range")
	// ErrRowCountMismatch indicates differing outer lengths in a bulk copy.
	ErrRowCountMismatch = errors.New("array2d: row counts differ")
	// ErrLengthMismatch indicates differing row lengths in a default-form bulk copy.
	ErrLengthMismatch = errors.New("array2d: row lengths differ")
	// ErrSpanCount indicates a span vector whose length differs from the row count.
	ErrSpanCount = errors.New("array2d: span count must equal row count")
	// ErrSpanRange indicates a span exceeding its row's bounds.
	ErrSpanRange = errors.New("array2d: span exceeds row bounds")
	// ErrDisposed indicates an operation on a container that was never
	// created or has already been disposed.
	ErrDisposed = errors.New("array2d: container is not created or already disposed")
)

// RowIndexError reports an ordinary row bounds violation.
type RowIndexError struct {
	Index    int
	RowCount int
}

func (e *RowIndexError) Error() string {
	return fmt.Sprintf("array2d: row index %d out of range [0..%d)", e.Index, e.RowCount)
}

func (e *RowIndexError) Unwrap() error { return ErrRowIndex }

// RestrictedRangeError reports access to a row outside the restricted
// parallel range a view was narrowed to. Distinct from RowIndexError so
// callers can tell "wrong row" from "wrong partition".
type RestrictedRangeError struct {
	Index    int
	Min, Max int
}

func (e *RestrictedRangeError) Error() string {
	return fmt.Sprintf("array2d: row index %d outside restricted parallel range [%d..%d]",
		e.Index, e.Min, e.Max)
}

func (e *RestrictedRangeError) Unwrap() error { return ErrRowRestricted }

// ElemIndexError reports an element index outside its row's bounds.
// Row is negative when the access came through a detached RowView.
type ElemIndexError struct {
	Row    int
	Index  int
	Length int
}

func (e *ElemIndexError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("array2d: element index %d out of range [0..%d)", e.Index, e.Length)
	}
	return fmt.Sprintf("array2d: element index %d out of range [0..%d) in row %d",
		e.Index, e.Length, e.Row)
}

func (e *ElemIndexError) Unwrap() error { return ErrElemIndex }

// LengthMismatchError reports a default-form bulk copy between rows of
// different lengths.
type LengthMismatchError struct {
	Row int
	Dst int
	Src int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("array2d: row %d length mismatch: destination %d, source %d",
		e.Row, e.Dst, e.Src)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }

// SpanError reports an explicit-form copy span exceeding a row's bounds on
// the named side ("source" or "destination").
type SpanError struct {
	Row       int
	Span      Span
	Side      string
	RowLength int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("array2d: row %d: span (src+%d, dst+%d, len %d) exceeds %s length %d",
		e.Row, e.Span.SrcOffset, e.Span.DstOffset, e.Span.Length, e.Side, e.RowLength)
}

func (e *SpanError) Unwrap() error { return ErrSpanRange }

// Span describes one row's portion of an explicit-form bulk copy: Length
// elements are copied from the source row at SrcOffset to the destination
// row at DstOffset.
type Span struct {
	SrcOffset int
	DstOffset int
	Length    int
}

// Options contains tunable construction parameters.
type Options struct {
	// ClearMemory zero-fills every row buffer right after allocation.
	ClearMemory bool
	// Allocator overrides mem.DefaultHeap as the allocation source.
	Allocator mem.Allocator
}

// DefaultOptions returns Options with default settings: ClearMemory on,
// allocation through mem.DefaultHeap.
func DefaultOptions() Options {
	return Options{ClearMemory: true}
}

// Array2D is a manually-managed jagged two-dimensional array: rowCount rows,
// each independently sized and independently allocated. The zero value is a
// non-created container; obtain live ones from New, NewUniform, FromSlices or
// Clone, and release them exactly once via Dispose or DisposeAsync.
//
// The container is a passive buffer with no internal locking. Conflicting
// concurrent access is detected (not serialized) through the safety token,
// and data-parallel writes are coordinated by handing each worker a view
// narrowed with Restrict.
type Array2D[T any] struct {
	rows     unsafe.Pointer // base of the row-pointer table
	lengths  unsafe.Pointer // base of the length table
	rowCount int
	minRow   int // inclusive restricted range; full range by default
	maxRow   int
	arena    mem.Arena
	alloc    mem.Allocator
	token    safety.Token
}

// rowTable views the row-pointer table.
func (a *Array2D[T]) rowTable() []unsafe.Pointer {
	return unsafe.Slice((*unsafe.Pointer)(a.rows), a.rowCount)
}

// lenTable views the per-row length table.
func (a *Array2D[T]) lenTable() []int {
	return unsafe.Slice((*int)(a.lengths), a.rowCount)
}

// row views row x's storage as a slice. Caller must have validated x.
func (a *Array2D[T]) row(x int) []T {
	n := a.lenTable()[x]
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(a.rowTable()[x]), n)
}
