package bytecast

import (
	"fmt"
	"golang.org/x/exp/constraints"
	"math/bits"
	"unsafe"
)

// Bits wraps an integer to operate on its single bits. Bits has value semantics: methods that
// change bits return a new Bits and leave the receiver alone.
//
// Bit indices count from the least significant bit. An index is reduced modulo the bit width of
// T before use, the way a hardware shift by register does, so no index is ever out of range:
// on a Bits[uint32], Get(90) is Get(26).
type Bits[T constraints.Integer] struct {
	Value T
}

// BitsOf wraps value.
func BitsOf[T constraints.Integer](value T) Bits[T] {
	return Bits[T]{Value: value}
}

// Len returns the number of bits in T.
func (b Bits[T]) Len() int {
	return int(b.width())
}

func (b Bits[T]) width() uint {
	return uint(unsafe.Sizeof(b.Value)) * 8
}

func (b Bits[T]) mask(idx uint) T {
	return T(1) << (idx % b.width())
}

// Get reports whether bit idx is set.
func (b Bits[T]) Get(idx uint) bool {
	return (b.Value>>(idx%b.width()))&1 != 0
}

// Set returns b with bit idx set.
func (b Bits[T]) Set(idx uint) Bits[T] {
	return Bits[T]{Value: b.Value | b.mask(idx)}
}

// Unset returns b with bit idx cleared.
func (b Bits[T]) Unset(idx uint) Bits[T] {
	return Bits[T]{Value: b.Value &^ b.mask(idx)}
}

// Toggle returns b with bit idx flipped.
func (b Bits[T]) Toggle(idx uint) Bits[T] {
	return Bits[T]{Value: b.Value ^ b.mask(idx)}
}

// Empty reports whether no bit is set.
func (b Bits[T]) Empty() bool {
	return b.Value == 0
}

// Reset returns a Bits with no bit set.
func (b Bits[T]) Reset() Bits[T] {
	return Bits[T]{}
}

// Flip returns b with the order of its bits reversed, so that bit 0 becomes the most
// significant bit. It does not complement the bits.
func (b Bits[T]) Flip() Bits[T] {
	reversed := bits.Reverse64(b.raw()) >> (64 - b.width())
	return Bits[T]{Value: T(reversed)}
}

// Count returns the number of set bits.
func (b Bits[T]) Count() int {
	return bits.OnesCount64(b.raw())
}

// String formats the bits most significant first, padded to the width of T.
func (b Bits[T]) String() string {
	return fmt.Sprintf("%0*b", b.Len(), b.raw())
}

// raw returns the bit pattern of the value, without sign extension.
func (b Bits[T]) raw() uint64 {
	return uint64(b.Value) & (^uint64(0) >> (64 - b.width()))
}
