package bytecast

import (
	"reflect"
	"unsafe"
)

// Layout describes the memory layout of a Pod type.
type Layout struct {
	// Kind is the reflect.Kind of the underlying type. Uint128 and Int128 report reflect.Array.
	Kind reflect.Kind

	// Size is the size in bytes, never zero.
	Size int

	// Align is the alignment requirement in bytes.
	Align int
}

// layouts maps every scalar kind admitted by Pod to its layout.
var layouts = map[reflect.Kind]Layout{
	reflect.Int8:    layoutOf[int8](),
	reflect.Uint8:   layoutOf[uint8](),
	reflect.Int16:   layoutOf[int16](),
	reflect.Uint16:  layoutOf[uint16](),
	reflect.Int32:   layoutOf[int32](),
	reflect.Uint32:  layoutOf[uint32](),
	reflect.Int64:   layoutOf[int64](),
	reflect.Uint64:  layoutOf[uint64](),
	reflect.Int:     layoutOf[int](),
	reflect.Uint:    layoutOf[uint](),
	reflect.Uintptr: layoutOf[uintptr](),
}

var layout128 = layoutOf[Uint128]()

var tyUint64 = reflect.TypeFor[uint64]()

func layoutOf[T Pod]() Layout {
	var zero T
	return Layout{
		Kind:  reflect.TypeFor[T]().Kind(),
		Size:  int(unsafe.Sizeof(zero)),
		Align: int(unsafe.Alignof(zero)),
	}
}

// Classify reports whether ty satisfies Pod and returns its layout. It is the run-time
// counterpart of the Pod constraint for code that only has a reflect.Type at hand.
func Classify(ty reflect.Type) (Layout, bool) {
	if ty == nil {
		return Layout{}, false
	}

	if ty.Kind() == reflect.Array {
		if ty.Len() == 2 && ty.Elem() == tyUint64 {
			return layout128, true
		}

		return Layout{}, false
	}

	l, ok := layouts[ty.Kind()]
	return l, ok
}

// LayoutOf returns the layout of T.
func LayoutOf[T Pod]() Layout {
	l, _ := Classify(reflect.TypeFor[T]())
	return l
}
