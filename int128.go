package bytecast

import (
	"fmt"
	"golang.org/x/sys/cpu"
)

// Uint128 is an unsigned 128-bit integer in the platform's native representation. Go has no
// 128-bit integer type, Uint128 exists so that 16 byte values can take part in the conversions
// of this package. The two words are ordered like the bytes of a native integer, so the bytes of
// a Uint128 equal the bytes of the corresponding 128-bit integer on the same platform.
type Uint128 [2]uint64

// Int128 is the signed counterpart of Uint128, in two's complement.
type Int128 [2]uint64

// U128 builds a Uint128 from its high and low 64 bits.
func U128(hi, lo uint64) Uint128 {
	var v Uint128
	h, l := wordIndex()
	v[h], v[l] = hi, lo
	return v
}

// I128 builds an Int128 from its signed high and unsigned low 64 bits.
func I128(hi int64, lo uint64) Int128 {
	var v Int128
	h, l := wordIndex()
	v[h], v[l] = uint64(hi), lo
	return v
}

// Hi returns the high 64 bits.
func (v Uint128) Hi() uint64 {
	h, _ := wordIndex()
	return v[h]
}

// Lo returns the low 64 bits.
func (v Uint128) Lo() uint64 {
	_, l := wordIndex()
	return v[l]
}

func (v Uint128) String() string {
	return fmt.Sprintf("0x%016x%016x", v.Hi(), v.Lo())
}

// Hi returns the high 64 bits, including the sign.
func (v Int128) Hi() int64 {
	h, _ := wordIndex()
	return int64(v[h])
}

// Lo returns the low 64 bits.
func (v Int128) Lo() uint64 {
	_, l := wordIndex()
	return v[l]
}

// Negative reports whether v is below zero.
func (v Int128) Negative() bool {
	return v.Hi() < 0
}

// wordIndex returns the array positions of the high and the low word.
func wordIndex() (hi, lo int) {
	if cpu.IsBigEndian {
		return 0, 1
	}

	return 1, 0
}
