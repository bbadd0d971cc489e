package array2d

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/jagged/mem"
	"github.com/katalvlaran/jagged/safety"
)

// New constructs a jagged container with per-row lengths taken from
// rowLengths, allocated from arena. With DefaultOptions every row buffer is
// zero-filled. Returns ErrNegativeLength, mem.ErrInvalidArena,
// mem.ErrSizeOverflow or mem.ErrNotPlain on bad arguments.
// Complexity: O(rowCount) allocations, O(total elements) when clearing.
func New[T any](rowLengths []int, arena mem.Arena, opts Options) (*Array2D[T], error) {
	return newWithLengths[T](rowLengths, arena, opts)
}

// NewUniform constructs a container of rowCount rows, each rowLength long.
// Returns ErrRowCount or ErrNegativeLength on negative dimensions, plus the
// argument errors of New.
func NewUniform[T any](rowCount, rowLength int, arena mem.Arena, opts Options) (*Array2D[T], error) {
	if rowCount < 0 {
		return nil, fmt.Errorf("array2d: row count %d: %w", rowCount, ErrRowCount)
	}
	if rowLength < 0 {
		return nil, fmt.Errorf("array2d: row length %d: %w", rowLength, ErrNegativeLength)
	}
	lengths := make([]int, rowCount)
	for i := range lengths {
		lengths[i] = rowLength
	}

	return newWithLengths[T](lengths, arena, opts)
}

// FromSlices copy-constructs a container shaped like src and filled with its
// elements. The fresh buffers are fully overwritten, so ClearMemory is moot.
func FromSlices[T any](src [][]T, arena mem.Arena, opts Options) (*Array2D[T], error) {
	lengths := make([]int, len(src))
	for i := range src {
		lengths[i] = len(src[i])
	}
	opts.ClearMemory = false
	a, err := newWithLengths[T](lengths, arena, opts)
	if err != nil {
		return nil, err
	}
	if err := a.CopyFromSlices(src); err != nil {
		_ = a.Dispose()
		return nil, err
	}

	return a, nil
}

// Clone copy-constructs a container shaped like src and filled with its
// elements, allocated from arena (which may differ from the source's).
func Clone[T any](src *Array2D[T], arena mem.Arena, opts Options) (*Array2D[T], error) {
	if !src.IsCreated() {
		return nil, fmt.Errorf("array2d: clone source: %w", ErrDisposed)
	}
	src.token.CheckRead()
	lengths := make([]int, src.rowCount)
	copy(lengths, src.lenTable())
	opts.ClearMemory = false
	a, err := newWithLengths[T](lengths, arena, opts)
	if err != nil {
		return nil, err
	}
	if err := a.CopyFrom(src); err != nil {
		_ = a.Dispose()
		return nil, err
	}

	return a, nil
}

// newWithLengths performs the three allocation waves shared by every
// constructor: (1) the length table, (2) the row-pointer table, (3) one
// buffer per row. All waves draw from one allocator and arena identity; on
// any failure everything allocated so far is released before returning.
func newWithLengths[T any](rowLengths []int, arena mem.Arena, opts Options) (*Array2D[T], error) {
	if err := mem.CheckPlain[T](); err != nil {
		return nil, err
	}
	if !arena.IsValid() {
		return nil, fmt.Errorf("array2d: arena %s: %w", arena, mem.ErrInvalidArena)
	}
	alloc := opts.Allocator
	if alloc == nil {
		alloc = mem.DefaultHeap
	}

	n := len(rowLengths)
	if uintptr(n) > mem.MaxAlloc/mem.PtrSize {
		return nil, fmt.Errorf("array2d: row-pointer table of %d rows: %w", n, mem.ErrSizeOverflow)
	}
	elemSize := mem.SizeOf[T]()
	for i, l := range rowLengths {
		if l < 0 {
			return nil, fmt.Errorf("array2d: row %d length %d: %w", i, l, ErrNegativeLength)
		}
		if elemSize > 0 && uintptr(l) > mem.MaxAlloc/elemSize {
			return nil, fmt.Errorf("array2d: row %d of %d elements: %w", i, l, mem.ErrSizeOverflow)
		}
	}

	lengths, err := alloc.Allocate(uintptr(n)*mem.SizeOf[int](), mem.AlignOf[int](), arena)
	if err != nil {
		return nil, err
	}
	rows, err := alloc.Allocate(uintptr(n)*mem.PtrSize, mem.PtrAlign, arena)
	if err != nil {
		_ = alloc.Free(lengths, arena)
		return nil, err
	}

	a := &Array2D[T]{
		rows:     rows,
		lengths:  lengths,
		rowCount: n,
		minRow:   0,
		maxRow:   n - 1,
		arena:    arena,
		alloc:    alloc,
		token:    safety.New("array2d.Array2D"),
	}
	rt, lt := a.rowTable(), a.lenTable()
	for i, l := range rowLengths {
		p, err := alloc.Allocate(uintptr(l)*elemSize, mem.AlignOf[T](), arena)
		if err != nil {
			for j := 0; j < i; j++ {
				_ = alloc.Free(rt[j], arena)
			}
			_ = alloc.Free(rows, arena)
			_ = alloc.Free(lengths, arena)
			return nil, err
		}
		rt[i] = p
		lt[i] = l
		if opts.ClearMemory && l > 0 {
			clear(unsafe.Slice((*T)(p), l))
		}
	}

	return a, nil
}
