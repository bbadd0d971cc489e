//go:build !jagged_unsafe

package safety

import "fmt"

// Enabled reports whether safety checks are compiled in.
const Enabled = true

// fail panics with err annotated by the token's diagnostic name.
func (t Token) fail(err error) {
	panic(fmt.Errorf("%w (token %q)", err, t.Name()))
}

// CheckRead validates a single read access: the token must be live and no
// bulk writer may be in flight. Panics with ErrReleased or ErrWriteConflict.
// Complexity: O(1).
func (t Token) CheckRead() {
	g := t.state
	if g == nil {
		t.fail(ErrReleased)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrReleased)
	}
	if g.writing {
		t.fail(ErrWriteConflict)
	}
}

// CheckWrite validates a single write access: the token must be live, not
// read-only, and no bulk reader or writer may be in flight. Panics with
// ErrReleased, ErrReadOnly, ErrReadConflict or ErrWriteConflict.
// Complexity: O(1).
func (t Token) CheckWrite() {
	g := t.state
	if g == nil {
		t.fail(ErrReleased)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrReleased)
	}
	if t.readOnly {
		t.fail(ErrReadOnly)
	}
	if g.readers > 0 {
		t.fail(ErrReadConflict)
	}
	if g.writing {
		t.fail(ErrWriteConflict)
	}
}

// BeginRead registers an in-flight bulk read. Must be paired with EndRead.
func (t Token) BeginRead() {
	g := t.state
	if g == nil {
		t.fail(ErrReleased)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrReleased)
	}
	if g.writing {
		t.fail(ErrWriteConflict)
	}
	g.readers++
}

// EndRead unregisters an in-flight bulk read.
func (t Token) EndRead() {
	g := t.state
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen == t.gen && g.readers > 0 {
		g.readers--
	}
}

// BeginWrite registers the in-flight bulk writer. Must be paired with EndWrite.
func (t Token) BeginWrite() {
	g := t.state
	if g == nil {
		t.fail(ErrReleased)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrReleased)
	}
	if t.readOnly {
		t.fail(ErrReadOnly)
	}
	if g.readers > 0 {
		t.fail(ErrReadConflict)
	}
	if g.writing {
		t.fail(ErrWriteConflict)
	}
	g.writing = true
}

// EndWrite unregisters the in-flight bulk writer.
func (t Token) EndWrite() {
	g := t.state
	if g == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen == t.gen {
		g.writing = false
	}
}

// Release invalidates the token and every child borrowed from it. Releasing
// twice, through a read-only child, or with bulk access in flight is a usage
// error. Panics with ErrDoubleRelease, ErrReadOnly, ErrReadConflict or
// ErrWriteConflict.
func (t Token) Release() {
	g := t.state
	if g == nil {
		t.fail(ErrDoubleRelease)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrDoubleRelease)
	}
	if t.readOnly {
		t.fail(ErrReadOnly)
	}
	if g.readers > 0 {
		t.fail(ErrReadConflict)
	}
	if g.writing {
		t.fail(ErrWriteConflict)
	}
	g.gen++
}

// Borrow returns a read-only child token sharing this token's guard state.
// The child becomes stale the moment the parent is released. Panics with
// ErrReleased if the parent is already stale.
func (t Token) Borrow() Token {
	g := t.state
	if g == nil {
		t.fail(ErrReleased)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.gen != t.gen {
		t.fail(ErrReleased)
	}

	return Token{state: g, gen: t.gen, readOnly: true}
}

// Valid reports whether the token is live, without panicking.
func (t Token) Valid() bool {
	g := t.state
	if g == nil {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.gen == t.gen
}
