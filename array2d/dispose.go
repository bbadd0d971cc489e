package array2d

import (
	"fmt"
	"unsafe"

	"github.com/katalvlaran/jagged/mem"
	"github.com/katalvlaran/jagged/safety"
	"github.com/katalvlaran/jagged/sched"
)

// Disposal state machine: Live → SyncDisposed (Dispose) or
// Live → PendingAsyncDispose → AsyncDisposed (DisposeAsync). Live is the only
// state in which access is legal. After either path the handle reads as a
// never-created container; the safety token catches use of stale copies.

// disposeRecord is the immutable snapshot handed to the deferred free task.
// It carries raw pointers and the allocator identity only, deliberately
// decoupled from the live container so the handle can be forgotten at once.
type disposeRecord struct {
	rows     unsafe.Pointer
	lengths  unsafe.Pointer
	rowCount int
	arena    mem.Arena
	alloc    mem.Allocator
}

// free runs the three deallocation waves in reverse allocation order: every
// row buffer, then the row-pointer table, then the length table. A failing
// free here means the allocation protocol was already violated; the task
// panics rather than leaking silently.
func (r disposeRecord) free() {
	rt := unsafe.Slice((*unsafe.Pointer)(r.rows), r.rowCount)
	for i, p := range rt {
		if err := r.alloc.Free(p, r.arena); err != nil {
			panic(fmt.Errorf("array2d: deferred free of row %d: %w", i, err))
		}
	}
	if err := r.alloc.Free(r.rows, r.arena); err != nil {
		panic(fmt.Errorf("array2d: deferred free of row-pointer table: %w", err))
	}
	if err := r.alloc.Free(r.lengths, r.arena); err != nil {
		panic(fmt.Errorf("array2d: deferred free of length table: %w", err))
	}
}

// snapshot captures the container's allocations for deferred release.
func (a *Array2D[T]) snapshot() disposeRecord {
	return disposeRecord{
		rows:     a.rows,
		lengths:  a.lengths,
		rowCount: a.rowCount,
		arena:    a.arena,
		alloc:    a.alloc,
	}
}

// reset zeroes the handle so a disposed container is indistinguishable from
// a never-created one.
func (a *Array2D[T]) reset() {
	a.rows, a.lengths = nil, nil
	a.rowCount = 0
	a.minRow, a.maxRow = 0, -1
	a.arena = mem.Invalid
	a.alloc = nil
	a.token = safety.Token{}
}

// Dispose synchronously releases the container's memory. The caller
// guarantees no concurrent readers or writers; in-flight access panics via
// the safety token. Disposing twice returns ErrDisposed; an invalid
// allocator identity returns mem.ErrInvalidArena.
// Complexity: O(rowCount).
func (a *Array2D[T]) Dispose() error {
	if !a.IsCreated() {
		return fmt.Errorf("array2d: dispose: %w", ErrDisposed)
	}
	if a.alloc == nil || !a.arena.IsValid() {
		return fmt.Errorf("array2d: dispose with arena %s: %w", a.arena, mem.ErrInvalidArena)
	}
	rec := a.snapshot()
	a.token.Release()
	a.reset()
	rec.free()

	return nil
}

// DisposeAsync schedules the container's memory to be released after deps
// complete, then immediately releases the safety token and zeroes the live
// handle. The returned dependency token completes once the frees have run;
// later work may sequence on it. The container must not be used between
// scheduling and completion — every stale copy fails its safety check.
func (a *Array2D[T]) DisposeAsync(deps ...sched.Handle) (sched.Handle, error) {
	if !a.IsCreated() {
		return sched.Handle{}, fmt.Errorf("array2d: dispose async: %w", ErrDisposed)
	}
	if a.alloc == nil || !a.arena.IsValid() {
		return sched.Handle{}, fmt.Errorf("array2d: dispose async with arena %s: %w",
			a.arena, mem.ErrInvalidArena)
	}
	rec := a.snapshot()
	a.token.Release()
	a.reset()

	return sched.Schedule(rec.free, deps...), nil
}
