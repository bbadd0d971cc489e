package mem_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jagged/mem"
)

// TestArenaValidity verifies which lifetime classes may back allocations.
func TestArenaValidity(t *testing.T) {
	cases := []struct {
		arena mem.Arena
		valid bool
	}{
		{mem.Invalid, false},
		{mem.None, false},
		{mem.Temp, true},
		{mem.TempJob, true},
		{mem.Persistent, true},
	}
	for _, tc := range cases {
		t.Run(tc.arena.String(), func(t *testing.T) {
			require.Equal(t, tc.valid, tc.arena.IsValid())
		})
	}
}

// TestHeapAllocateRejectsBadArguments checks the argument-error paths.
func TestHeapAllocateRejectsBadArguments(t *testing.T) {
	h := mem.NewHeap()

	_, err := h.Allocate(16, 8, mem.Invalid)
	require.ErrorIs(t, err, mem.ErrInvalidArena)

	_, err = h.Allocate(16, 8, mem.None)
	require.ErrorIs(t, err, mem.ErrInvalidArena)

	_, err = h.Allocate(mem.MaxAlloc, 8, mem.Temp)
	require.ErrorIs(t, err, mem.ErrSizeOverflow)
}

// TestHeapAllocateAlignment verifies returned pointers honor the requested
// alignment, including alignments larger than the pointer size.
func TestHeapAllocateAlignment(t *testing.T) {
	h := mem.NewHeap()
	for _, align := range []uintptr{1, 2, 4, 8, 16, 64} {
		p, err := h.Allocate(32, align, mem.Temp)
		require.NoError(t, err)
		require.Zero(t, uintptr(p)%align, "pointer %p not aligned to %d", p, align)
		require.NoError(t, h.Free(p, mem.Temp))
	}
}

// TestHeapZeroSizeAllocationsAreDistinct ensures zero-length rows still get
// unique, freeable addresses.
func TestHeapZeroSizeAllocationsAreDistinct(t *testing.T) {
	h := mem.NewHeap()
	p1, err := h.Allocate(0, 8, mem.Persistent)
	require.NoError(t, err)
	p2, err := h.Allocate(0, 8, mem.Persistent)
	require.NoError(t, err)
	require.NotEqual(t, uintptr(p1), uintptr(p2))
	require.NoError(t, h.Free(p1, mem.Persistent))
	require.NoError(t, h.Free(p2, mem.Persistent))
}

// TestHeapFreeMisuse covers double free, foreign pointers and arena mismatch.
func TestHeapFreeMisuse(t *testing.T) {
	h := mem.NewHeap()
	p, err := h.Allocate(8, 8, mem.TempJob)
	require.NoError(t, err)

	require.ErrorIs(t, h.Free(p, mem.Persistent), mem.ErrInvalidArena)
	require.NoError(t, h.Free(p, mem.TempJob))
	require.ErrorIs(t, h.Free(p, mem.TempJob), mem.ErrDoubleFree)

	var local int64
	require.ErrorIs(t, h.Free(unsafe.Pointer(&local), mem.TempJob), mem.ErrForeignPointer)
	require.ErrorIs(t, h.Free(nil, mem.TempJob), mem.ErrForeignPointer)
}

// TestHeapStats verifies per-arena accounting and the live-block counter.
func TestHeapStats(t *testing.T) {
	h := mem.NewHeap()
	require.Zero(t, h.Live())

	p1, err := h.Allocate(100, 8, mem.Temp)
	require.NoError(t, err)
	p2, err := h.Allocate(28, 8, mem.Temp)
	require.NoError(t, err)
	_, err = h.Allocate(16, 8, mem.Persistent)
	require.NoError(t, err)

	st := h.Stats(mem.Temp)
	require.Equal(t, uint64(2), st.Allocs)
	require.Equal(t, uint64(0), st.Frees)
	require.Equal(t, uintptr(128), st.InUseBytes)
	require.Equal(t, 3, h.Live())

	require.NoError(t, h.Free(p1, mem.Temp))
	require.NoError(t, h.Free(p2, mem.Temp))
	st = h.Stats(mem.Temp)
	require.Equal(t, uint64(2), st.Frees)
	require.Zero(t, st.InUseBytes)
	require.Equal(t, 1, h.Live())
}

// TestCheckPlain verifies the plain-data element rule.
func TestCheckPlain(t *testing.T) {
	require.NoError(t, mem.CheckPlain[int]())
	require.NoError(t, mem.CheckPlain[float64]())
	require.NoError(t, mem.CheckPlain[[4]byte]())
	require.NoError(t, mem.CheckPlain[struct {
		A int32
		B [2]float32
	}]())

	require.ErrorIs(t, mem.CheckPlain[*int](), mem.ErrNotPlain)
	require.ErrorIs(t, mem.CheckPlain[string](), mem.ErrNotPlain)
	require.ErrorIs(t, mem.CheckPlain[[]int](), mem.ErrNotPlain)
	require.ErrorIs(t, mem.CheckPlain[map[int]int](), mem.ErrNotPlain)
	require.ErrorIs(t, mem.CheckPlain[struct{ S string }](), mem.ErrNotPlain)
	require.ErrorIs(t, mem.CheckPlain[struct {
		A int
		B struct{ P *byte }
	}](), mem.ErrNotPlain)
}

// TestSizeAlignHelpers sanity-checks the layout helpers.
func TestSizeAlignHelpers(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(int64(0)), mem.SizeOf[int64]())
	require.Equal(t, unsafe.Alignof(int64(0)), mem.AlignOf[int64]())
	require.Equal(t, unsafe.Sizeof(uintptr(0)), mem.PtrSize)
}
