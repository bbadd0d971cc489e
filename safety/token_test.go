//go:build !jagged_unsafe

package safety_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/jagged/safety"
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

// TestTokenLifecycle covers the ordinary create/check/release sequence.
func TestTokenLifecycle(t *testing.T) {
	tok := safety.New("buffer")
	require.True(t, tok.Valid())
	require.Equal(t, "buffer", tok.Name())

	tok.CheckRead()
	tok.CheckWrite()
	tok.Release()
	require.False(t, tok.Valid())

	requirePanicsIs(t, safety.ErrReleased, tok.CheckRead)
	requirePanicsIs(t, safety.ErrReleased, tok.CheckWrite)
	requirePanicsIs(t, safety.ErrDoubleRelease, tok.Release)
}

// TestZeroTokenIsInvalid verifies the zero value fails every check.
func TestZeroTokenIsInvalid(t *testing.T) {
	var tok safety.Token
	require.False(t, tok.Valid())
	requirePanicsIs(t, safety.ErrReleased, tok.CheckRead)
	requirePanicsIs(t, safety.ErrReleased, tok.CheckWrite)
	requirePanicsIs(t, safety.ErrDoubleRelease, tok.Release)
}

// TestBorrowedTokenRules verifies read-only children: reads allowed, writes
// and releases rejected, staleness after parent release.
func TestBorrowedTokenRules(t *testing.T) {
	tok := safety.New("rows")
	view := tok.Borrow()

	view.CheckRead()
	requirePanicsIs(t, safety.ErrReadOnly, view.CheckWrite)
	requirePanicsIs(t, safety.ErrReadOnly, view.Release)

	tok.Release()
	require.False(t, view.Valid())
	requirePanicsIs(t, safety.ErrReleased, view.CheckRead)
}

// TestBulkAccessConflicts verifies in-flight tracking: a bulk writer excludes
// everyone, bulk readers exclude writers but admit other readers.
func TestBulkAccessConflicts(t *testing.T) {
	tok := safety.New("copy")

	tok.BeginWrite()
	requirePanicsIs(t, safety.ErrWriteConflict, tok.CheckRead)
	requirePanicsIs(t, safety.ErrWriteConflict, tok.CheckWrite)
	requirePanicsIs(t, safety.ErrWriteConflict, tok.BeginRead)
	requirePanicsIs(t, safety.ErrWriteConflict, tok.Release)
	tok.EndWrite()

	tok.BeginRead()
	tok.BeginRead() // many readers are fine
	tok.CheckRead()
	requirePanicsIs(t, safety.ErrReadConflict, tok.CheckWrite)
	requirePanicsIs(t, safety.ErrReadConflict, tok.BeginWrite)
	requirePanicsIs(t, safety.ErrReadConflict, tok.Release)
	tok.EndRead()
	tok.EndRead()

	tok.Release()
}

// TestPanicValuesWrapSentinels verifies the panic payloads carry the token
// name and unwrap to the package sentinels.
func TestPanicValuesWrapSentinels(t *testing.T) {
	tok := safety.New("named")
	tok.Release()

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, safety.ErrReleased))
		require.Contains(t, err.Error(), `"named"`)
	}()
	tok.CheckRead()
}
