package bytecast

import (
	"github.com/stretchr/testify/require"
	"testing"
	"testing/quick"
	"unsafe"
)

func roundTripView[T Pod](t *testing.T) {
	t.Helper()

	check := func(value T) bool {
		view := View(&value)
		if view.Len() != SizeOf[T]() {
			return false
		}

		// the reference aliases the original value
		ref, ok := Ref[T](MutView(&value))
		if !ok || ref != &value {
			return false
		}

		copied, ok := Deref[T](view)
		return ok && copied == value
	}

	require.NoError(t, quick.Check(check, nil))
}

func TestView_RoundTrip(t *testing.T) {
	roundTripView[int8](t)
	roundTripView[uint8](t)
	roundTripView[int16](t)
	roundTripView[uint16](t)
	roundTripView[int32](t)
	roundTripView[uint32](t)
	roundTripView[int64](t)
	roundTripView[uint64](t)
	roundTripView[int](t)
	roundTripView[uint](t)
	roundTripView[uintptr](t)
	roundTripView[Port](t)
	roundTripView[Uint128](t)
	roundTripView[Int128](t)
}

func TestView_Aliases(t *testing.T) {
	value := uint32(0)

	view := View(&value)
	bytes := MutView(&value)
	for idx := range bytes {
		bytes[idx] = 0xff
	}

	require.Equal(t, value, uint32(0xffffffff))
	require.Equal(t, view.At(0), byte(0xff))

	// Bytes returns a copy, writing to it does not change the value
	clone := view.Bytes()
	clone[0] = 0
	require.Equal(t, value, uint32(0xffffffff))

	var dst [8]byte
	require.Equal(t, view.CopyTo(dst[:]), 4)
	require.Equal(t, dst, [8]byte{0xff, 0xff, 0xff, 0xff})
}

func TestRef_WritesThrough(t *testing.T) {
	var value uint64

	ref, ok := Ref[uint64](MutView(&value))
	require.True(t, ok)

	*ref = 1234
	require.Equal(t, value, uint64(1234))
}

func TestRef_LengthMismatch(t *testing.T) {
	var value uint64
	bytes := MutView(&value)

	_, ok := Ref[uint64](bytes[:7])
	require.False(t, ok)

	_, ok = Ref[uint32](bytes)
	require.False(t, ok)

	_, ok = Ref[uint16](nil)
	require.False(t, ok)

	_, ok = Deref[uint16](View(&value))
	require.False(t, ok)
}

func TestRef_Misaligned(t *testing.T) {
	backing := make([]uint64, 2)
	buf := unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), 16)

	_, ok := Ref[uint64](buf[1:9])
	require.False(t, ok)

	// one byte values are never misaligned
	_, ok = Ref[uint8](buf[1:2])
	require.True(t, ok)

	// the copying path does not care about alignment
	value, ok := Deref[uint64](ByteView{b: buf[1:9]})
	require.True(t, ok)
	require.Equal(t, value, uint64(0))
}

func TestRawView(t *testing.T) {
	type Pair struct {
		A uint16
		B uint16
	}

	pair := Pair{A: 1, B: 2}
	view := RawView(&pair)
	require.Equal(t, view.Len(), 4)

	a := uint16(1)
	b := uint16(2)
	require.True(t, view.Equal(append(View(&a).Bytes(), View(&b).Bytes()...)))

	var empty struct{}
	require.Equal(t, RawView(&empty).Len(), 0)
}

func TestByteView_String(t *testing.T) {
	require.Equal(t, ByteView{b: []byte{0x00, 0xab, 0x10}}.String(), "00 ab 10")
	require.Equal(t, ByteView{}.String(), "")
}
