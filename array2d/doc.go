// Package array2d implements Array2D[T], a manually-managed jagged 2D array:
// a fixed outer length of rows, each row independently sized and independently
// allocated, with direct access to the underlying memory.
//
// What:
//
//   - Array2D[T] owns a two-level buffer: a row-pointer table, a per-row
//     length table, and one heap block per row, all drawn from a single
//     mem.Allocator and mem.Arena identity.
//   - RowView[T] is a non-owning, read-only slice over exactly one row.
//   - Bulk copy moves whole rows (default form) or explicit per-row spans
//     between containers and Go-managed [][]T.
//   - Disposal is synchronous (Dispose) or deferred (DisposeAsync), which
//     snapshots the raw pointers into a scheduler task and returns a
//     dependency token.
//
// Why:
//
//   - Array-of-arrays semantics without per-row managed-object overhead or
//     pointer-chasing through garbage-collected row objects.
//   - Safe data-parallel writes: Restrict narrows a view to one worker's
//     disjoint row partition; touching a row outside it raises an error
//     distinct from an ordinary bounds violation.
//
// Element types must be plain data (fixed-size, pointer-free, relocatable);
// constructors reject anything else with mem.ErrNotPlain.
//
// Errors:
//
//   - Constructors and copies return errors: ErrRowCount, ErrNegativeLength,
//     ErrRowCountMismatch, ErrLengthMismatch, ErrSpanCount, ErrSpanRange,
//     ErrDisposed, plus mem.ErrInvalidArena / mem.ErrSizeOverflow /
//     mem.ErrNotPlain.
//   - Indexed access fails fast by panicking with errors wrapping
//     ErrRowIndex, ErrRowRestricted or ErrElemIndex, and with the safety
//     package sentinels for aliasing and use-after-dispose violations.
//   - Build with -tags jagged_unsafe to compile the access checks out;
//     violations are then undefined behavior.
//
// Complexity:
//
//   - Get/Set/Row/RowLength: O(1).
//   - Construction and disposal: O(rowCount) allocations/frees.
//   - Bulk copy: O(total elements copied).
package array2d
