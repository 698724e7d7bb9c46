package bytecast

import (
	"reflect"
	"unsafe"
)

// Cast copies the first bytes of b into a T. It fails with an error wrapping ErrShortBuffer if b
// is shorter than T. Extra bytes are ignored. b may start at any address.
func Cast[T Pod](b []byte) (T, error) {
	var out T
	if size := int(unsafe.Sizeof(out)); len(b) < size {
		return out, shortBuffer(reflect.TypeFor[T](), size, len(b))
	}

	return CastUnchecked[T](b), nil
}

// CastUnchecked is Cast without the length test. If b is shorter than T the behavior is
// undefined.
func CastUnchecked[T Pod](b []byte) T {
	var out T
	dst := MutView(&out)
	copy(dst, unsafe.Slice(unsafe.SliceData(b), len(dst)))
	return out
}

// PutBytes copies the native representation of value into dst and returns the number of bytes
// written. It fails with an error wrapping ErrShortBuffer if dst is too small, leaving dst
// untouched.
func PutBytes[T Pod](dst []byte, value T) (int, error) {
	src := View(&value)
	if len(dst) < src.Len() {
		return 0, shortBuffer(reflect.TypeFor[T](), src.Len(), len(dst))
	}

	return src.CopyTo(dst), nil
}

// Append appends the native representation of value to dst and returns the extended slice.
func Append[T Pod](dst []byte, value T) []byte {
	return append(dst, MutView(&value)...)
}

// ByteAt returns byte idx of the native representation of value. ok is false if idx is not
// smaller than the size of T.
func ByteAt[T Pod](value T, idx int) (b byte, ok bool) {
	bytes := View(&value)
	if idx < 0 || idx >= bytes.Len() {
		return 0, false
	}

	return bytes.At(idx), true
}
