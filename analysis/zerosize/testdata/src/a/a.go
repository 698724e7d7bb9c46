package a

import "github.com/go-gum/bytecast"

type Empty struct{}

type Header struct {
	Magic uint32
}

func views() {
	var empty Empty
	bytecast.RawView(&empty) // want `RawView of zero-sized type a.Empty is always empty`

	var none [0]uint64
	bytecast.RawView[[0]uint64](&none) // want `RawView of zero-sized type \[0\]uint64 is always empty`

	var nested struct {
		A struct{}
		B [0]int
	}
	bytecast.RawView(&nested) // want `RawView of zero-sized type struct\{A struct\{\}; B \[0\]int\} is always empty`

	var header Header
	bytecast.RawView(&header)

	var value uint16
	bytecast.View(&value)
}

func generic[T any](value *T) {
	bytecast.RawView(value)
}
