package bytecast

import (
	"bytes"
	"fmt"
	"unsafe"
)

// ByteView is a read-only window over the memory of a value. It never owns the memory and
// must not outlive the value it was created from.
type ByteView struct {
	b []byte
}

// Len returns the number of bytes in the view.
func (v ByteView) Len() int {
	return len(v.b)
}

// At returns the byte at index idx. It panics if idx is out of range, like a slice would.
func (v ByteView) At(idx int) byte {
	return v.b[idx]
}

// Bytes returns a copy of the viewed bytes.
func (v ByteView) Bytes() []byte {
	return bytes.Clone(v.b)
}

// CopyTo copies the viewed bytes into dst and returns the number of bytes copied.
func (v ByteView) CopyTo(dst []byte) int {
	return copy(dst, v.b)
}

// Equal reports whether the view holds exactly the bytes of b.
func (v ByteView) Equal(b []byte) bool {
	return bytes.Equal(v.b, b)
}

// String formats the bytes as space separated hex pairs.
func (v ByteView) String() string {
	return fmt.Sprintf("% x", v.b)
}

// RawView returns the bytes of any value, including padding and pointer words. Any type can be
// viewed this way, interpreting the result is left to the caller. A zero-sized T yields an empty
// view; the zerosize analyzer reports such calls.
func RawView[T any](value *T) ByteView {
	size := unsafe.Sizeof(*value)
	if size == 0 {
		return ByteView{}
	}

	return ByteView{b: unsafe.Slice((*byte)(unsafe.Pointer(value)), size)}
}

// View returns a read-only alias of the bytes of value.
func View[T Pod](value *T) ByteView {
	return ByteView{b: MutView(value)}
}

// MutView returns a mutable alias of the bytes of value. Writes through the slice change value.
// While the slice is in use the caller must not access value through any other alias.
func MutView[T Pod](value *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(value)), unsafe.Sizeof(*value))
}

// Ref returns b reinterpreted as a pointer to T. It fails if len(b) differs from the size of T
// or if b does not start at an address suitably aligned for T. The result aliases b.
func Ref[T Pod](b []byte) (*T, bool) {
	var zero T
	if len(b) != int(unsafe.Sizeof(zero)) {
		return nil, false
	}

	if uintptr(unsafe.Pointer(unsafe.SliceData(b)))%unsafe.Alignof(zero) != 0 {
		return nil, false
	}

	return RefUnchecked[T](b), true
}

// RefUnchecked is Ref without the length and alignment tests. The caller guarantees that b holds
// at least the size of T bytes at an aligned address; otherwise the behavior is undefined.
func RefUnchecked[T Pod](b []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// Deref copies the value out of a view of exactly the size of T bytes.
func Deref[T Pod](view ByteView) (T, bool) {
	var out T
	if view.Len() != int(unsafe.Sizeof(out)) {
		return out, false
	}

	copy(MutView(&out), view.b)
	return out, true
}
