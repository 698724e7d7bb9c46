// Package bytecast reinterprets fixed-size plain-old-data values as their raw bytes and back,
// without copying where the memory layout allows it, and provides a value-semantics wrapper for
// manipulating single bits of an integer.
//
// The set of types that may be reinterpreted is closed and expressed as the [Pod] constraint:
// fixed-width and platform-width integers, [Uint128] and [Int128], and any defined type whose
// underlying type is one of those. Conversions whose validity is decidable from the types alone
// are checked by the compiler through the width constraints ([Pod16], [AtLeast4], ...), so
//
//	bytecast.From4[uint64](&arr) // does not compile, uint64 is not a Pod32
//	bytecast.Into8[uint32](&v)   // does not compile, uint32 has fewer than 8 bytes
//
// Conditions that depend on run-time lengths are reported as values: [Ref], [Deref] and
// [Reader.Read] return a boolean, [Cast] and [PutBytes] return an error wrapping
// [ErrShortBuffer]. The Unchecked variants skip those tests and are undefined when their
// precondition does not hold.
//
// Byte order is always the native order of the platform and is passed through unchanged. Use
// [NativeOrder] to find out which order that is when bytes leave the process.
//
// Aliasing: a slice returned by [MutView] or a pointer returned by [Ref] aliases the original
// memory. While a mutable alias is in use, no other alias of the same value may be read or
// written. The package does not and cannot check this.
package bytecast
