package array2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jagged/array2d"
	"github.com/katalvlaran/jagged/mem"
)

// TestRowView_Basics verifies Len, RowIndex and element access.
func TestRowView_Basics(t *testing.T) {
	opts, _ := newLeakChecked(t)
	a, err := array2d.FromSlices([][]int{{10, 20, 30}, {}}, mem.Temp, opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Dispose()) }()

	v := a.Row(0)
	require.Equal(t, 3, v.Len())
	require.Equal(t, 0, v.RowIndex())
	require.Equal(t, 10, v.At(0))
	require.Equal(t, 30, v.At(2))

	empty := a.Row(1)
	require.Zero(t, empty.Len())
	require.Equal(t, 1, empty.RowIndex())
}

// TestRowView_Bounds verifies element bounds errors carry the row index.
func TestRowView_Bounds(t *testing.T) {
	opts, _ := newLeakChecked(t)
	a, err := array2d.FromSlices([][]int{{1, 2}}, mem.Temp, opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Dispose()) }()

	v := a.Row(0)
	requirePanicsIs(t, array2d.ErrElemIndex, func() { v.At(2) })
	requirePanicsIs(t, array2d.ErrElemIndex, func() { v.At(-1) })
	requirePanicsIs(t, array2d.ErrRowIndex, func() { a.Row(1) }) // row 1 does not exist
}

// TestRowView_SeesWrites verifies a view is a live window, not a copy.
func TestRowView_SeesWrites(t *testing.T) {
	opts, _ := newLeakChecked(t)
	a, err := array2d.New[int]([]int{2}, mem.Temp, opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Dispose()) }()

	v := a.Row(0)
	require.Zero(t, v.At(1))
	a.Set(0, 1, 77)
	require.Equal(t, 77, v.At(1))
}

// TestRowView_All verifies ordered iteration and early termination.
func TestRowView_All(t *testing.T) {
	opts, _ := newLeakChecked(t)
	a, err := array2d.FromSlices([][]int{{4, 5, 6}}, mem.Temp, opts)
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Dispose()) }()

	var got []int
	for _, e := range a.Row(0).All() {
		got = append(got, e)
	}
	require.Equal(t, []int{4, 5, 6}, got)

	count := 0
	for range a.Row(0).All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}
