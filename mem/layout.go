package mem

import (
	"math"
	"unsafe"
)

// PtrSize is the size in bytes of a pointer on this platform.
const PtrSize = unsafe.Sizeof(uintptr(0))

// PtrAlign is the alignment in bytes of a pointer on this platform.
const PtrAlign = unsafe.Alignof(uintptr(0))

// MaxAlloc is the largest single block that may be requested from an
// Allocator: the platform's maximum addressable byte count.
const MaxAlloc = uintptr(math.MaxInt)

// SizeOf returns the size in bytes of one element of type T.
// Complexity: O(1), compile-time constant.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// AlignOf returns the required alignment in bytes of type T.
// Complexity: O(1), compile-time constant.
func AlignOf[T any]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
