// Package mem defines the allocator boundary every jagged container allocates
// through, plus the small layout helpers the containers need.
//
// What:
//
//   - Arena: closed set of allocation lifetime classes (Temp, TempJob,
//     Persistent) plus the Invalid and None sentinels that may never back an
//     allocation.
//   - Allocator: the allocate/free contract. Every allocation belonging to one
//     container instance must be requested from, and released to, the same
//     Allocator and Arena identity.
//   - Heap: the default Allocator. Each block stays registered until freed, so
//     double frees and frees of pointers the allocator never handed out are
//     detected instead of corrupting memory.
//   - SizeOf/AlignOf/PtrSize/MaxAlloc: platform layout helpers.
//   - CheckPlain: enforces the "plain data" element rule — fixed-size,
//     pointer-free, relocatable value types only.
//
// Errors:
//
//   - ErrInvalidArena: arena is Invalid, None, or mismatched on free.
//   - ErrSizeOverflow: a single request exceeds the platform addressing limit.
//   - ErrDoubleFree: pointer was already released.
//   - ErrForeignPointer: pointer was never produced by this allocator.
//   - ErrNotPlain: element type contains pointers, maps, chans, funcs,
//     slices, strings or interfaces.
package mem
