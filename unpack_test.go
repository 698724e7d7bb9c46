package bytecast

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestUnpackStruct(t *testing.T) {
	type Inner struct {
		Flags uint8
		Port  Port
	}

	type Record struct {
		Kind    int8
		Length  uint32
		Inner   Inner
		Pair    [2]int16
		Skipped uint64 `bytecast:"-"`
		Offset  uint16 `bytecast:"pad=3"`
		Wide    Uint128

		// not exported, takes no bytes
		note uint64
	}

	var buf []byte
	buf = Append(buf, int8(-3))
	buf = Append(buf, uint32(70000))
	buf = Append(buf, uint8(0x80))
	buf = Append(buf, uint16(8080))
	buf = Append(buf, int16(-1))
	buf = Append(buf, int16(2))
	buf = append(buf, 0xde, 0xad, 0xbe)
	buf = Append(buf, uint16(12))
	buf = Append(buf, U128(5, 6))

	var record Record
	n, err := Unpack(buf, &record)
	require.Equal(t, err, nil)
	require.Equal(t, n, len(buf))
	require.Equal(t, record, Record{
		Kind:   -3,
		Length: 70000,
		Inner:  Inner{Flags: 0x80, Port: 8080},
		Pair:   [2]int16{-1, 2},
		Offset: 12,
		Wide:   U128(5, 6),
	})
}

func TestUnpackPointer(t *testing.T) {
	type Node struct {
		Value uint16
		Next  *Node
	}

	buf := Append(Append(nil, uint16(1)), uint16(2))

	// the recursion ends when the input runs out
	_, err := UnpackNew[Node](buf)
	require.ErrorIs(t, err, ErrShortBuffer)

	type Boxed struct {
		Value *uint32
	}

	boxed, err := UnpackNew[Boxed](Append(nil, uint32(77)))
	require.Equal(t, err, nil)
	require.Equal(t, *boxed.Value, uint32(77))
}

func TestUnpackScalar(t *testing.T) {
	value, err := UnpackNew[int64](Append(nil, int64(-99)))
	require.Equal(t, err, nil)
	require.Equal(t, value, int64(-99))

	values, err := UnpackNew[[3]uint8]([]byte{1, 2, 3, 4})
	require.Equal(t, err, nil)
	require.Equal(t, values, [3]uint8{1, 2, 3})
}

func TestUnpackShortBuffer(t *testing.T) {
	type Header struct {
		Magic   uint16
		Version uint32
	}

	var header Header
	n, err := Unpack([]byte{1, 2, 3}, &header)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, n, 2)
	require.Contains(t, err.Error(), `set field "Version"`)

	type Padded struct {
		Value uint8 `bytecast:"pad=4"`
	}

	_, err = UnpackNew[Padded]([]byte{0, 0})
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestUnpackExact(t *testing.T) {
	exact := NewDecoder().Exact()

	value, err := UnpackNewWith[uint16](exact, []byte{1, 2})
	require.Equal(t, err, nil)
	require.Equal(t, value, NativeOrder().Uint16([]byte{1, 2}))

	_, err = UnpackNewWith[uint16](exact, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrTrailingBytes)

	// the lenient default ignores trailing bytes
	_, err = UnpackNew[uint16]([]byte{1, 2, 3})
	require.Equal(t, err, nil)
}

func TestUnpackTag(t *testing.T) {
	type Struct struct {
		A uint8 `wire:"-"`
		B uint8 `bytecast:"-"`
	}

	value, err := UnpackNewWith[Struct](NewDecoder().WithTag("wire"), []byte{7, 8})
	require.Equal(t, err, nil)
	require.Equal(t, value, Struct{B: 7})
}

func TestUnpackNotSupported(t *testing.T) {
	type Struct struct {
		Name string
	}

	_, err := UnpackNew[Struct](make([]byte, 32))
	require.ErrorAs(t, err, &NotSupportedError{})

	_, err = UnpackNew[float64](make([]byte, 8))
	require.ErrorAs(t, err, &NotSupportedError{})

	type BadTag struct {
		Value uint8 `bytecast:"pad=x"`
	}

	_, err = UnpackNew[BadTag](make([]byte, 8))
	require.Error(t, err)

	var value uint32
	_, err = Unpack(nil, value)
	require.ErrorAs(t, err, &NotSupportedError{})
}

func TestUnpackCycleWithoutInput(t *testing.T) {
	type Loop struct {
		Next *Loop
	}

	_, err := UnpackNew[Loop](make([]byte, 8))
	require.ErrorAs(t, err, &NotSupportedError{})

	type Chain struct {
		Links [2]*Chain
	}

	_, err = UnpackNew[Chain](make([]byte, 8))
	require.ErrorAs(t, err, &NotSupportedError{})

	// consuming input on every pass ends in a short buffer instead
	type List struct {
		Value uint8
		Next  *List
	}

	_, err = UnpackNew[List](make([]byte, 8))
	require.ErrorIs(t, err, ErrShortBuffer)
}

type unsupportedOuter struct {
	Inner *unsupportedInner
	Name  string
}

type unsupportedInner struct {
	Outer *unsupportedOuter
}

type outerRecord struct {
	Tag   uint8
	Inner *innerRecord
}

type innerRecord struct {
	Count uint8
	Outer *outerRecord
}

func TestUnpackFailedBuildNotCached(t *testing.T) {
	dec := NewDecoder()

	_, err := UnpackNewWith[unsupportedOuter](dec, make([]byte, 32))
	require.ErrorAs(t, err, &NotSupportedError{})

	// the inner type was built on the way, but must not be cached with a broken reference
	_, err = UnpackNewWith[unsupportedInner](dec, make([]byte, 32))
	require.ErrorAs(t, err, &NotSupportedError{})

	_, err = UnpackNewWith[unsupportedOuter](dec, make([]byte, 32))
	require.ErrorAs(t, err, &NotSupportedError{})
}

func TestUnpackMutualRecursion(t *testing.T) {
	dec := NewDecoder()

	_, err := UnpackNewWith[outerRecord](dec, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrShortBuffer)

	// the inner type comes from the cache filled by the previous call
	var inner innerRecord
	n, err := dec.Unpack([]byte{7, 8}, &inner)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, n, 2)
	require.Equal(t, inner.Count, uint8(7))
}
