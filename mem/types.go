// Package mem defines core types, the Allocator contract, and sentinel errors
// for the mem subpackage of github.com/katalvlaran/jagged.
package mem

import (
	"errors"
	"unsafe"
)

// Sentinel errors for mem operations.
var (
	// ErrInvalidArena indicates an arena that may not back allocations
	// (Invalid, None) or an arena mismatch between Allocate and Free.
	ErrInvalidArena = errors.New("mem: invalid allocation arena")
	// ErrSizeOverflow indicates a single allocation request exceeding the
	// platform's maximum addressable block size.
	ErrSizeOverflow = errors.New("mem: allocation size exceeds addressing limit")
	// ErrDoubleFree indicates a pointer released more than once.
	ErrDoubleFree = errors.New("mem: pointer already freed")
	// ErrForeignPointer indicates a pointer this allocator never produced.
	ErrForeignPointer = errors.New("mem: pointer unknown to allocator")
	// ErrNotPlain indicates an element type that is not plain data.
	ErrNotPlain = errors.New("mem: element type is not plain data")
)

// Arena selects the lifetime class an allocation belongs to. All memory of a
// single container instance must use one Arena for its whole lifetime.
type Arena int

const (
	// Invalid is the zero value; using it as an allocation source is an
	// argument error.
	Invalid Arena = iota
	// None is the explicit "no allocation" sentinel; it is a valid way to
	// say "nothing to free" but never a valid allocation source.
	None
	// Temp is scratch memory with a very short expected lifetime.
	Temp
	// TempJob is memory owned by one asynchronous job.
	TempJob
	// Persistent is long-lived memory freed explicitly by the owner.
	Persistent
)

// IsValid reports whether a may back allocations.
func (a Arena) IsValid() bool { return a > None }

// String returns the arena's name for error messages.
func (a Arena) String() string {
	switch a {
	case Invalid:
		return "Invalid"
	case None:
		return "None"
	case Temp:
		return "Temp"
	case TempJob:
		return "TempJob"
	case Persistent:
		return "Persistent"
	default:
		return "Arena(?)"
	}
}

// Allocator is the boundary through which containers obtain and release raw
// memory. Implementations must return pointers aligned to at least align, and
// must detect misuse (double free, foreign pointer, arena mismatch) rather
// than silently corrupting state.
type Allocator interface {
	// Allocate returns a block of size bytes aligned to align, drawn from
	// arena. A size of zero still yields a distinct, freeable pointer.
	Allocate(size, align uintptr, arena Arena) (unsafe.Pointer, error)
	// Free releases a block previously returned by Allocate with the same
	// arena identity.
	Free(ptr unsafe.Pointer, arena Arena) error
}
