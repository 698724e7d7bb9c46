package bytecast

import (
	"golang.org/x/exp/constraints"
	"unsafe"
)

// Pod is the closed set of types that can be viewed as bytes and rebuilt from arbitrary bytes
// without breaking an invariant. Every member has a statically known, non-zero size.
//
// The approximation elements admit defined types such as
//
//	type Port uint16
//
// which play the role of transparent single-field wrappers.
type Pod interface {
	constraints.Integer | ~[2]uint64
}

// Pod8 contains the one byte members of Pod.
type Pod8 interface {
	~int8 | ~uint8
}

// Pod16 contains the two byte members of Pod.
type Pod16 interface {
	~int16 | ~uint16
}

// Pod128 contains the sixteen byte members of Pod, namely Uint128 and Int128.
type Pod128 interface {
	~[2]uint64
}

// AtLeast2 contains every member of Pod that has two or more bytes.
type AtLeast2 interface {
	Pod16 | Pod32 | Pod64 | Pod128
}

// AtLeast4 contains every member of Pod that has four or more bytes.
type AtLeast4 interface {
	Pod32 | Pod64 | Pod128
}

// AtLeast8 contains every member of Pod that has eight or more bytes.
type AtLeast8 interface {
	Pod64 | Pod128
}

// SizeOf returns the size of T in bytes.
func SizeOf[T Pod]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AlignOf returns the alignment requirement of T in bytes.
func AlignOf[T Pod]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}
