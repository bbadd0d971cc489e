// Package jagged provides a manually-managed, jagged (ragged) two-dimensional
// array container for performance-critical code: a fixed number of rows, each
// row independently sized and independently allocated, with direct access to
// the underlying memory.
//
// 🚀 What is jagged?
//
//	A container library for array-of-arrays workloads that avoids per-row
//	managed-object overhead:
//		• Array2D[T]: the owning container — two-level allocation (row-pointer
//		  table + per-row length table + N row buffers), per-element and
//		  per-row access, bulk copy in/out of plain [][]T
//		• RowView[T]: a non-owning, read-only view over exactly one row
//		• Checked-borrow safety tokens catching races, use-after-free and
//		  double-free in debug builds, compiled out with -tags jagged_unsafe
//		• Deferred disposal: hand the buffer to a background task that frees
//		  it once outstanding work completes, and forget the live handle
//
// ✨ Why choose jagged?
//
//   - Predictable layout – rows are separate heap blocks, no pointer-chasing
//     through garbage-collected row objects
//   - Rock-solid guarantees – every allocation and free goes through one
//     allocator/arena identity; misuse fails fast instead of corrupting memory
//   - Data-parallel friendly – restricted row ranges give each worker a
//     disjoint partition with its own, distinct out-of-partition error
//
// Under the hood, everything is organized under four subpackages:
//
//	array2d/ — Array2D[T] and RowView[T]: construction, access, bulk copy, disposal
//	mem/     — allocator boundary: Arena lifetime classes, Heap allocator, layout helpers
//	safety/  — checked-borrow tokens (read/write/release, borrowed child tokens)
//	sched/   — dependency handles and deferred tasks for asynchronous disposal
//
// Quick ASCII example:
//
//	    rows ──► [ *row0 │ *row1 │ *row2 ]
//	    lens ──► [   2   │   0   │   3   ]
//	    row0 ──► [ e e ]      row2 ──► [ e e e ]
//
//	a jagged container with three rows of lengths 2, 0 and 3.
//
// Dive into each subpackage's doc.go for contracts, error taxonomies and
// complexity notes.
//
//	go get github.com/katalvlaran/jagged/array2d
package jagged
