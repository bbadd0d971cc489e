package safety

import (
	"errors"
	"sync"
)

// Sentinel errors carried by check panics.
var (
	// ErrReleased indicates use of a token after Release, or of a zero Token.
	ErrReleased = errors.New("safety: token released or not initialized")
	// ErrDoubleRelease indicates Release on an already-released token.
	ErrDoubleRelease = errors.New("safety: token already released")
	// ErrWriteConflict indicates access while a writer is in flight.
	ErrWriteConflict = errors.New("safety: conflicting write in progress")
	// ErrReadConflict indicates a write while readers are in flight.
	ErrReadConflict = errors.New("safety: conflicting read in progress")
	// ErrReadOnly indicates a write attempt through a borrowed read-only token.
	ErrReadOnly = errors.New("safety: token is read-only")
)

// guard is the shared state behind one token family: the owning token plus
// every read-only child borrowed from it.
type guard struct {
	mu      sync.Mutex
	gen     uint64 // bumped on Release; outstanding tokens go stale
	readers int    // in-flight bulk readers
	writing bool   // in-flight bulk writer
	name    string
}

// Token is a checked-borrow handle. The zero Token is invalid; obtain one
// from New and children from Borrow. Copies of a Token share guard state.
type Token struct {
	state    *guard
	gen      uint64
	readOnly bool
}

// New creates a live token named for diagnostics.
func New(name string) Token {
	return Token{state: &guard{gen: 1, name: name}, gen: 1}
}

// Name returns the diagnostic name the token was created with.
func (t Token) Name() string {
	if t.state == nil {
		return ""
	}
	return t.state.name
}
