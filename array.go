package bytecast

import "unsafe"

// reinterpret reads an Out from the memory of in. The caller guarantees that Out is not larger
// than In. If Out needs a stricter alignment than In provides, the bytes are copied into an
// aligned Out instead of reading through a misaligned pointer.
func reinterpret[Out, In any](in *In) Out {
	var out Out
	if unsafe.Alignof(out) > unsafe.Alignof(*in) {
		size := unsafe.Sizeof(out)
		copy(unsafe.Slice((*byte)(unsafe.Pointer(&out)), size), unsafe.Slice((*byte)(unsafe.Pointer(in)), size))
		return out
	}

	return *(*Out)(unsafe.Pointer(in))
}

// Into1 returns the first byte of the native representation of value.
func Into1[T Pod](value *T) [1]byte {
	return reinterpret[[1]byte](value)
}

// Into2 returns the first two bytes of the native representation of value.
func Into2[T AtLeast2](value *T) [2]byte {
	return reinterpret[[2]byte](value)
}

// Into4 returns the first four bytes of the native representation of value.
func Into4[T AtLeast4](value *T) [4]byte {
	return reinterpret[[4]byte](value)
}

// Into8 returns the first eight bytes of the native representation of value.
func Into8[T AtLeast8](value *T) [8]byte {
	return reinterpret[[8]byte](value)
}

// Into16 returns the native representation of a 128-bit value.
func Into16[T Pod128](value *T) [16]byte {
	return reinterpret[[16]byte](value)
}

// From1 rebuilds a one byte value.
func From1[T Pod8](b *[1]byte) T {
	return reinterpret[T](b)
}

// From2 rebuilds a two byte value from its native representation.
func From2[T Pod16](b *[2]byte) T {
	return reinterpret[T](b)
}

// From4 rebuilds a four byte value from its native representation.
func From4[T Pod32](b *[4]byte) T {
	return reinterpret[T](b)
}

// From8 rebuilds an eight byte value from its native representation.
func From8[T Pod64](b *[8]byte) T {
	return reinterpret[T](b)
}

// From16 rebuilds a 128-bit value from its native representation.
func From16[T Pod128](b *[16]byte) T {
	return reinterpret[T](b)
}
