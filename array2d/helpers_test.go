package array2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jagged/array2d"
	"github.com/katalvlaran/jagged/mem"
)

// requirePanicsIs asserts fn panics with an error matching target.
func requirePanicsIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic matching %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}

// newLeakChecked returns options backed by a private heap and registers a
// cleanup asserting every block was freed by the end of the test.
func newLeakChecked(t *testing.T) (array2d.Options, *mem.Heap) {
	t.Helper()
	h := mem.NewHeap()
	opts := array2d.DefaultOptions()
	opts.Allocator = h
	t.Cleanup(func() {
		require.Zero(t, h.Live(), "leaked %d blocks", h.Live())
	})

	return opts, h
}
