package mem

import (
	"fmt"
	"sync"
	"unsafe"
)

// block records one live allocation. The buf reference keeps the backing
// bytes reachable while the pointer is handed out "manually".
type block struct {
	buf   []byte
	arena Arena
	size  uintptr
}

// Heap is the default Allocator. Every live block is registered under its
// base pointer, which gives the allocator an identity to validate frees
// against: releasing a pointer twice, releasing one it never produced, or
// releasing through a different arena are all reported as errors.
//
// Heap is safe for concurrent use.
type Heap struct {
	mu     sync.Mutex
	blocks map[unsafe.Pointer]block
	freed  map[unsafe.Pointer]struct{}
	stats  map[Arena]ArenaStats
}

// ArenaStats is a snapshot of one arena's accounting within a Heap.
type ArenaStats struct {
	Allocs     uint64 // total Allocate calls
	Frees      uint64 // total successful Free calls
	InUseBytes uintptr
}

// DefaultHeap is the process-wide allocator containers use unless an
// Options.Allocator overrides it.
var DefaultHeap = NewHeap()

// NewHeap creates an empty Heap allocator.
func NewHeap() *Heap {
	return &Heap{
		blocks: make(map[unsafe.Pointer]block),
		freed:  make(map[unsafe.Pointer]struct{}),
		stats:  make(map[Arena]ArenaStats),
	}
}

// Allocate returns a block of size bytes aligned to align, drawn from arena.
// A size of zero still yields a distinct, freeable pointer, so callers that
// allocate per-row storage never share addresses between rows.
// Returns ErrInvalidArena or ErrSizeOverflow on bad arguments.
// Complexity: O(1) beyond the runtime allocation itself.
func (h *Heap) Allocate(size, align uintptr, arena Arena) (unsafe.Pointer, error) {
	if !arena.IsValid() {
		return nil, fmt.Errorf("mem: allocate from arena %s: %w", arena, ErrInvalidArena)
	}
	if align == 0 {
		align = PtrAlign
	}
	if size > MaxAlloc-align {
		return nil, fmt.Errorf("mem: request of %d bytes: %w", size, ErrSizeOverflow)
	}
	n := size
	if n == 0 {
		n = 1
	}
	buf := make([]byte, n+align-1)
	base := uintptr(unsafe.Pointer(&buf[0]))
	off := (align - base%align) % align
	ptr := unsafe.Pointer(&buf[off])

	h.mu.Lock()
	h.blocks[ptr] = block{buf: buf, arena: arena, size: size}
	delete(h.freed, ptr)
	st := h.stats[arena]
	st.Allocs++
	st.InUseBytes += size
	h.stats[arena] = st
	h.mu.Unlock()

	return ptr, nil
}

// Free releases a block previously returned by Allocate. The arena must match
// the one the block was allocated from.
// Returns ErrDoubleFree, ErrForeignPointer or ErrInvalidArena on misuse.
// Complexity: O(1).
func (h *Heap) Free(ptr unsafe.Pointer, arena Arena) error {
	if ptr == nil {
		return fmt.Errorf("mem: free nil pointer: %w", ErrForeignPointer)
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.blocks[ptr]
	if !ok {
		if _, was := h.freed[ptr]; was {
			return fmt.Errorf("mem: free %p twice: %w", ptr, ErrDoubleFree)
		}
		return fmt.Errorf("mem: free %p: %w", ptr, ErrForeignPointer)
	}
	if b.arena != arena {
		return fmt.Errorf("mem: free %p from arena %s, allocated from %s: %w",
			ptr, arena, b.arena, ErrInvalidArena)
	}
	delete(h.blocks, ptr)
	h.freed[ptr] = struct{}{}
	st := h.stats[arena]
	st.Frees++
	st.InUseBytes -= b.size
	h.stats[arena] = st

	return nil
}

// Live returns the number of blocks currently allocated and not yet freed.
// Useful in tests as a leak check.
func (h *Heap) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.blocks)
}

// Stats returns a snapshot of per-arena accounting.
func (h *Heap) Stats(arena Arena) ArenaStats {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.stats[arena]
}
