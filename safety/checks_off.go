//go:build jagged_unsafe

package safety

// Enabled reports whether safety checks are compiled in.
const Enabled = false

// With the jagged_unsafe tag every check is a no-op and aliasing violations,
// use-after-release and double-release are undefined behavior.

// CheckRead is a no-op in unchecked builds.
func (t Token) CheckRead() {}

// CheckWrite is a no-op in unchecked builds.
func (t Token) CheckWrite() {}

// BeginRead is a no-op in unchecked builds.
func (t Token) BeginRead() {}

// EndRead is a no-op in unchecked builds.
func (t Token) EndRead() {}

// BeginWrite is a no-op in unchecked builds.
func (t Token) BeginWrite() {}

// EndWrite is a no-op in unchecked builds.
func (t Token) EndWrite() {}

// Release is a no-op in unchecked builds.
func (t Token) Release() {}

// Borrow returns a read-only copy sharing the same guard state.
func (t Token) Borrow() Token {
	return Token{state: t.state, gen: t.gen, readOnly: true}
}

// Valid always reports true for a non-zero token in unchecked builds.
func (t Token) Valid() bool {
	return t.state != nil
}
