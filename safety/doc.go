// Package safety implements checked-borrow tokens: runtime-verified aliasing
// rules for containers whose memory outlives the garbage collector's
// understanding of it.
//
// What:
//
//   - Token: a value handle over shared guard state. A container holds one
//     Token for its whole lifetime; read-only children produced by Borrow
//     cover non-owning views and die with the parent's generation.
//   - CheckRead/CheckWrite: cheap per-access validation — one writer XOR many
//     readers, never both, never after Release.
//   - BeginRead/EndRead and BeginWrite/EndWrite: in-flight tracking around
//     bulk operations, so a long copy conflicts with overlapping access.
//   - Release: invalidates the token and every borrowed child at once by
//     bumping the shared generation counter.
//
// Violations are programming-contract errors, not transient conditions; every
// check fails fast by panicking with an error matchable via errors.Is against
// the package sentinels.
//
// Build modes:
//
//	Default builds perform full checks. Building with -tags jagged_unsafe
//	compiles every check to a no-op (Enabled == false); violations are then
//	undefined behavior, exactly like a release build of a checked container.
package safety
