package array2d

import (
	"fmt"
	"runtime"
)

// The bulk-copy family is one algorithm specialized over the four
// {container, [][]T} × {source, destination} combinations, in default form
// (whole rows, lengths must match) or explicit form (one Span per row).
//
// Copy-in holds the destination's write gate for the duration; copy-out holds
// the source's read gate. When one endpoint is a Go-managed [][]T, its rows
// are kept reachable until the byte copy finishes (runtime.KeepAlive), the
// one place aliasing is enforced by the runtime rather than our own token.

// copySpan validates one row's span and copies it. In default form the span
// covers the whole destination row.
func copySpan[T any](dst, src []T, sp Span, row int) error {
	if sp.Length < 0 {
		return fmt.Errorf("array2d: row %d: negative span length %d: %w", row, sp.Length, ErrSpanRange)
	}
	if sp.SrcOffset < 0 || sp.SrcOffset > len(src)-sp.Length {
		return &SpanError{Row: row, Span: sp, Side: "source", RowLength: len(src)}
	}
	if sp.DstOffset < 0 || sp.DstOffset > len(dst)-sp.Length {
		return &SpanError{Row: row, Span: sp, Side: "destination", RowLength: len(dst)}
	}
	copy(dst[sp.DstOffset:sp.DstOffset+sp.Length], src[sp.SrcOffset:sp.SrcOffset+sp.Length])

	return nil
}

// copyRows drives every variant: per destination row, resolve both sides,
// pick the row's span, validate, copy. A nil spans vector selects default
// form, which additionally demands equal row lengths.
func copyRows[T any](dst, src func(int) []T, rows int, spans []Span) error {
	for i := 0; i < rows; i++ {
		d, s := dst(i), src(i)
		sp := Span{Length: len(d)}
		if spans != nil {
			sp = spans[i]
		} else if len(s) != len(d) {
			return &LengthMismatchError{Row: i, Dst: len(d), Src: len(s)}
		}
		if err := copySpan(d, s, sp, i); err != nil {
			return err
		}
	}

	return nil
}

// requireFullRange rejects bulk copies through a restricted view: a whole-
// container operation would cross the worker's partition.
func (a *Array2D[T]) requireFullRange() error {
	if a.minRow == 0 && a.maxRow == a.rowCount-1 {
		return nil
	}
	first := 0
	if a.minRow == 0 {
		first = a.maxRow + 1
	}

	return &RestrictedRangeError{Index: first, Min: a.minRow, Max: a.maxRow}
}

// checkSpans validates the span vector's outer length.
func (a *Array2D[T]) checkSpans(spans []Span) error {
	if len(spans) != a.rowCount {
		return fmt.Errorf("array2d: %d spans for %d rows: %w", len(spans), a.rowCount, ErrSpanCount)
	}

	return nil
}

// copyFromSlices is the shared copy-in path for [][]T sources.
func (a *Array2D[T]) copyFromSlices(src [][]T, spans []Span) error {
	if !a.IsCreated() {
		return fmt.Errorf("array2d: copy into: %w", ErrDisposed)
	}
	if err := a.requireFullRange(); err != nil {
		return err
	}
	if len(src) != a.rowCount {
		return fmt.Errorf("array2d: destination has %d rows, source %d: %w",
			a.rowCount, len(src), ErrRowCountMismatch)
	}
	a.token.BeginWrite()
	defer a.token.EndWrite()

	err := copyRows(a.row, func(i int) []T { return src[i] }, a.rowCount, spans)
	runtime.KeepAlive(src)

	return err
}

// copyToSlices is the shared copy-out path for [][]T destinations.
func (a *Array2D[T]) copyToSlices(dst [][]T, spans []Span) error {
	if !a.IsCreated() {
		return fmt.Errorf("array2d: copy out of: %w", ErrDisposed)
	}
	if err := a.requireFullRange(); err != nil {
		return err
	}
	if len(dst) != a.rowCount {
		return fmt.Errorf("array2d: source has %d rows, destination %d: %w",
			a.rowCount, len(dst), ErrRowCountMismatch)
	}
	a.token.BeginRead()
	defer a.token.EndRead()

	err := copyRows(func(i int) []T { return dst[i] }, a.row, a.rowCount, spans)
	runtime.KeepAlive(dst)

	return err
}

// copyFromArray is the shared container-to-container path into a.
func (a *Array2D[T]) copyFromArray(src *Array2D[T], spans []Span) error {
	if !a.IsCreated() {
		return fmt.Errorf("array2d: copy into: %w", ErrDisposed)
	}
	if !src.IsCreated() {
		return fmt.Errorf("array2d: copy from: %w", ErrDisposed)
	}
	if err := a.requireFullRange(); err != nil {
		return err
	}
	if err := src.requireFullRange(); err != nil {
		return err
	}
	if src.rowCount != a.rowCount {
		return fmt.Errorf("array2d: destination has %d rows, source %d: %w",
			a.rowCount, src.rowCount, ErrRowCountMismatch)
	}
	a.token.BeginWrite()
	defer a.token.EndWrite()
	if a.rows != src.rows { // same storage needs no second gate
		src.token.BeginRead()
		defer src.token.EndRead()
	}

	return copyRows(a.row, src.row, a.rowCount, spans)
}

// CopyFromSlices copies whole rows of src into the container. Row counts and
// per-row lengths must match; fails with ErrRowCountMismatch or
// ErrLengthMismatch. Complexity: O(total elements).
func (a *Array2D[T]) CopyFromSlices(src [][]T) error {
	return a.copyFromSlices(src, nil)
}

// CopyToSlices copies whole rows of the container into dst. Shape rules as
// CopyFromSlices.
func (a *Array2D[T]) CopyToSlices(dst [][]T) error {
	return a.copyToSlices(dst, nil)
}

// CopyFrom copies whole rows of another container into this one. Shape rules
// as CopyFromSlices. When source and destination share storage only the
// write gate is held.
func (a *Array2D[T]) CopyFrom(src *Array2D[T]) error {
	return a.copyFromArray(src, nil)
}

// CopyTo copies whole rows of this container into dst.
func (a *Array2D[T]) CopyTo(dst *Array2D[T]) error {
	return dst.copyFromArray(a, nil)
}

// CopyRangeFromSlices copies spans[i] of src's row i into the container's
// row i. One span per row; fails with ErrSpanCount or ErrSpanRange.
func (a *Array2D[T]) CopyRangeFromSlices(src [][]T, spans []Span) error {
	if err := a.checkSpans(spans); err != nil {
		return err
	}

	return a.copyFromSlices(src, spans)
}

// CopyRangeToSlices copies spans[i] of the container's row i into dst's row i.
func (a *Array2D[T]) CopyRangeToSlices(dst [][]T, spans []Span) error {
	if err := a.checkSpans(spans); err != nil {
		return err
	}

	return a.copyToSlices(dst, spans)
}

// CopyRangeFrom copies spans[i] of src's row i into this container's row i.
func (a *Array2D[T]) CopyRangeFrom(src *Array2D[T], spans []Span) error {
	if err := a.checkSpans(spans); err != nil {
		return err
	}

	return a.copyFromArray(src, spans)
}

// CopyRangeTo copies spans[i] of this container's row i into dst's row i.
func (a *Array2D[T]) CopyRangeTo(dst *Array2D[T], spans []Span) error {
	if err := dst.checkSpans(spans); err != nil {
		return err
	}

	return dst.copyFromArray(a, spans)
}

// ToSlices allocates and returns a Go-managed [][]T copy of the container,
// the inverse of FromSlices. Complexity: O(total elements).
func (a *Array2D[T]) ToSlices() ([][]T, error) {
	if !a.IsCreated() {
		return nil, fmt.Errorf("array2d: copy out of: %w", ErrDisposed)
	}
	out := make([][]T, a.rowCount)
	lt := a.lenTable()
	for i := range out {
		out[i] = make([]T, lt[i])
	}
	if err := a.copyToSlices(out, nil); err != nil {
		return nil, err
	}

	return out, nil
}
