package bytecast

import (
	"iter"
	"math"
	"unsafe"
)

// Reader extracts values of type T one after another from a byte buffer. It owns no data: the
// buffer is borrowed and must not change while the Reader is used.
//
// The cursor only moves forward. It may point past the end of the buffer, in which case no
// bytes remain. Every read re-validates that a full T is available from the cursor.
//
// The value methods (Read, Advance, Remaining) never modify the Reader and can be chained:
//
//	v, ok := bytecast.NewReader[uint32](buf).Advance(4).Read()
//
// The pointer methods (Next, All) advance the Reader in place and turn it into a finite
// sequence of values. A Reader is not safe for concurrent use by multiple goroutines.
type Reader[T Pod] struct {
	buf    []byte
	cursor int
}

// NewReader returns a Reader over buf positioned at offset zero.
func NewReader[T Pod](buf []byte) Reader[T] {
	return Reader[T]{buf: buf}
}

// Offset returns the cursor position in bytes.
func (r Reader[T]) Offset() int {
	return r.cursor
}

// Len returns the length of the underlying buffer in bytes.
func (r Reader[T]) Len() int {
	return len(r.buf)
}

// remainingBytes returns the number of bytes after the cursor, zero if it overran the buffer.
func (r Reader[T]) remainingBytes() int {
	return max(len(r.buf)-r.cursor, 0)
}

// Read returns the value at the cursor without moving it. ok is false if fewer bytes than the
// size of T remain.
func (r Reader[T]) Read() (value T, ok bool) {
	if r.remainingBytes() < int(unsafe.Sizeof(value)) {
		return value, false
	}

	return r.ReadUnchecked(), true
}

// ReadUnchecked is Read without the length test. The caller guarantees that Remaining is at
// least one; otherwise the behavior is undefined.
func (r Reader[T]) ReadUnchecked() T {
	var out T
	dst := MutView(&out)
	src := unsafe.Add(unsafe.Pointer(unsafe.SliceData(r.buf)), r.cursor)
	copy(dst, unsafe.Slice((*byte)(src), len(dst)))
	return out
}

// Advance returns a Reader with the cursor moved n bytes forward. The cursor saturates at
// math.MaxInt and a negative n leaves it where it is.
func (r Reader[T]) Advance(n int) Reader[T] {
	if n <= 0 {
		return r
	}

	if r.cursor > math.MaxInt-n {
		r.cursor = math.MaxInt
	} else {
		r.cursor += n
	}

	return r
}

// Remaining returns the exact number of values that can still be read.
func (r Reader[T]) Remaining() int {
	var zero T
	return r.remainingBytes() / int(unsafe.Sizeof(zero))
}

// Next reads the value at the cursor and advances past it. Once Next returned false it keeps
// returning false.
func (r *Reader[T]) Next() (T, bool) {
	value, ok := r.Read()
	if !ok {
		return value, false
	}

	*r = r.Advance(int(unsafe.Sizeof(value)))
	return value, true
}

// All returns a sequence over the remaining values. Iterating advances r, so a second
// iteration continues where the first one stopped.
func (r *Reader[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			value, ok := r.Next()
			if !ok || !yield(value) {
				return
			}
		}
	}
}
