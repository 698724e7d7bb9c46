package bytecast

import (
	"fmt"
	"golang.org/x/exp/constraints"
	"reflect"
	"sync"
)

// Unpack fills target, which must be a pointer, from the native bytes at the start of buf using
// the default Decoder. It returns the number of bytes consumed.
func Unpack(buf []byte, target any) (int, error) {
	return dec.Unpack(buf, target)
}

// UnpackNew decodes a new T from buf using the default Decoder.
func UnpackNew[T any](buf []byte) (T, error) {
	return UnpackNewWith[T](&dec, buf)
}

// UnpackNewWith decodes a new T from buf using the given Decoder.
func UnpackNewWith[T any](dec *Decoder, buf []byte) (T, error) {
	var target T
	_, err := dec.Unpack(buf, &target)
	return target, err
}

// A setter sets the reflect.Value to a value read at the cursor of src
type setter func(*cursor, reflect.Value) error

// cursor tracks the read position of one Unpack call
type cursor struct {
	buf []byte
	off int

	// offsets at which recursive types were entered, see lazySetter
	entered map[reflect.Type]int
}

// A set of types that are currently in construction
type typeSet map[reflect.Type]struct{}

// construction holds the setters built for one top level type. They are only added to the
// Decoder's cache once all of them were built successfully.
type construction struct {
	inProgress typeSet
	built      map[reflect.Type]setter
}

// The default Decoder instance.
var dec Decoder

// Decoder fills Go values from raw native bytes. Integers of every Pod kind, arrays, structs
// and pointers to those are supported. Struct fields are read in declaration order with no
// padding between them; unexported fields are skipped and take no bytes.
//
// The struct tag (default "bytecast") controls single fields:
//
//	Reserved uint16 `bytecast:"-"`     // skip the field, consume no bytes
//	Offset   uint32 `bytecast:"pad=2"` // skip 2 bytes, then read the field
//
// A Decoder is safe for concurrent use.
type Decoder struct {
	// the struct tag that is used
	structTag string

	// Cache for setters, indexed by reflect.Type
	setterCache sync.Map

	// fail with ErrTrailingBytes if input is left over
	exact bool
}

func NewDecoder() *Decoder {
	return &Decoder{
		structTag: "bytecast",
	}
}

func (d *Decoder) WithTag(structTag string) *Decoder {
	if d.structTag == structTag {
		return d
	}

	return &Decoder{
		structTag: structTag,
		exact:     d.exact,
	}
}

// Exact returns a Decoder that requires the whole input to be consumed.
func (d *Decoder) Exact() *Decoder {
	if d.exact {
		return d
	}

	return &Decoder{
		structTag: d.structTag,
		exact:     true,
	}
}

func (d *Decoder) Unpack(buf []byte, target any) (int, error) {
	pointer := reflect.ValueOf(target)
	if pointer.Kind() != reflect.Pointer || pointer.IsNil() {
		return 0, NotSupportedError{Type: reflect.TypeOf(target)}
	}

	targetValue := pointer.Elem()

	// build the setter for the targets type
	setter, err := d.buildSetter(targetValue.Type())
	if err != nil {
		return 0, err
	}

	src := &cursor{buf: buf}
	if err := setter(src, targetValue); err != nil {
		return src.off, err
	}

	if d.exact && src.off != len(buf) {
		return src.off, fmt.Errorf("%d of %d bytes left: %w", len(buf)-src.off, len(buf), ErrTrailingBytes)
	}

	return src.off, nil
}

func (d *Decoder) buildSetter(ty reflect.Type) (setter, error) {
	if cached, ok := d.setterCache.Load(ty); ok {
		return cached.(setter), nil
	}

	build := &construction{
		inProgress: typeSet{},
		built:      map[reflect.Type]setter{},
	}

	setter, err := d.setterOf(build, ty)
	if err != nil {
		return nil, err
	}

	for builtType, built := range build.built {
		d.setterCache.Store(builtType, built)
	}

	return setter, nil
}

func (d *Decoder) setterOf(build *construction, ty reflect.Type) (setter, error) {
	if cached, ok := d.setterCache.Load(ty); ok {
		return cached.(setter), nil
	}

	if built, ok := build.built[ty]; ok {
		return built, nil
	}

	if _, ok := build.inProgress[ty]; ok {
		// detected a cycle. return a setter that looks up the actual setter when executed.
		// the build only succeeds if the actual setter was built too.
		return lazySetter(build, ty), nil
	}

	build.inProgress[ty] = struct{}{}

	setter, err := d.makeSetterOf(build, ty)
	if err != nil {
		return nil, err
	}

	build.built[ty] = setter

	return setter, nil
}

// lazySetter closes a cycle back to ty. Every pass through the cycle must consume input,
// otherwise the recursion would never end: entering ty again at the same offset fails with a
// NotSupportedError.
func lazySetter(build *construction, ty reflect.Type) setter {
	return func(src *cursor, target reflect.Value) error {
		if src.entered == nil {
			src.entered = map[reflect.Type]int{}
		}

		prev, nested := src.entered[ty]
		if nested && prev == src.off {
			return NotSupportedError{Type: ty}
		}

		src.entered[ty] = src.off

		defer func() {
			if nested {
				src.entered[ty] = prev
			} else {
				delete(src.entered, ty)
			}
		}()

		return build.built[ty](src, target)
	}
}

// scalarSetters holds a setter for every scalar kind Classify accepts.
var scalarSetters = map[reflect.Kind]setter{
	reflect.Int8:    makeSetInt[int8](reflect.Value.SetInt),
	reflect.Int16:   makeSetInt[int16](reflect.Value.SetInt),
	reflect.Int32:   makeSetInt[int32](reflect.Value.SetInt),
	reflect.Int64:   makeSetInt[int64](reflect.Value.SetInt),
	reflect.Int:     makeSetInt[int](reflect.Value.SetInt),
	reflect.Uint8:   makeSetInt[uint8](reflect.Value.SetUint),
	reflect.Uint16:  makeSetInt[uint16](reflect.Value.SetUint),
	reflect.Uint32:  makeSetInt[uint32](reflect.Value.SetUint),
	reflect.Uint64:  makeSetInt[uint64](reflect.Value.SetUint),
	reflect.Uint:    makeSetInt[uint](reflect.Value.SetUint),
	reflect.Uintptr: makeSetInt[uintptr](reflect.Value.SetUint),
}

func (d *Decoder) makeSetterOf(build *construction, ty reflect.Type) (setter, error) {
	if layout, ok := Classify(ty); ok && layout.Kind != reflect.Array {
		return scalarSetters[layout.Kind], nil
	}

	switch ty.Kind() {
	case reflect.Pointer:
		return d.makeSetPointer(build, ty)

	case reflect.Struct:
		return d.makeSetStruct(build, ty)

	case reflect.Array:
		return d.makeSetArray(build, ty)

	default:
		return nil, NotSupportedError{Type: ty}
	}
}

func (d *Decoder) makeSetStruct(build *construction, ty reflect.Type) (setter, error) {
	var setters []setter

	structTag := d.structTag
	if structTag == "" {
		structTag = "bytecast"
	}

	fields, err := fieldsToUnpack(ty, structTag)
	if err != nil {
		return nil, err
	}

	for _, field := range fields {
		de, err := d.setterOf(build, field.Type)
		if err != nil {
			return nil, fmt.Errorf("setter for field %q: %w", field.Name, err)
		}

		setters = append(setters, de)
	}

	setter := func(src *cursor, target reflect.Value) error {
		for idx, field := range fields {
			if field.Pad > 0 {
				if len(src.buf)-src.off < field.Pad {
					return fmt.Errorf("padding before field %q: %w", field.Name, shortBuffer(ty, field.Pad, len(src.buf)-src.off))
				}

				src.off += field.Pad
			}

			fieldValue := target.FieldByIndex(field.Index)
			if err := setters[idx](src, fieldValue); err != nil {
				return fmt.Errorf("set field %q on %q: %w", field.Name, target.Type(), err)
			}
		}

		return nil
	}

	return setter, nil
}

func (d *Decoder) makeSetArray(build *construction, ty reflect.Type) (setter, error) {
	elementSetter, err := d.setterOf(build, ty.Elem())
	if err != nil {
		return nil, fmt.Errorf("setter for element type %q: %w", ty, err)
	}

	// number of elements in the array
	elementCount := ty.Len()

	setter := func(src *cursor, target reflect.Value) error {
		for idx := 0; idx < elementCount; idx++ {
			elementValue := target.Index(idx)
			if err := elementSetter(src, elementValue); err != nil {
				return fmt.Errorf("set element idx=%d: %w", idx, err)
			}
		}

		return nil
	}

	return setter, nil
}

func (d *Decoder) makeSetPointer(build *construction, ty reflect.Type) (setter, error) {
	pointeeType := ty.Elem()

	pointeeSetter, err := d.setterOf(build, pointeeType)
	if err != nil {
		return nil, err
	}

	setter := func(src *cursor, target reflect.Value) error {
		// newValue is now a pointer to an instance of the pointeeType
		newValue := reflect.New(pointeeType)
		if err := pointeeSetter(src, newValue.Elem()); err != nil {
			return err
		}

		// set pointer to the new value
		target.Set(newValue)

		return nil
	}

	return setter, err
}

func makeSetInt[T constraints.Integer, V int64 | uint64](setValue func(reflect.Value, V)) setter {
	return func(src *cursor, target reflect.Value) error {
		r := NewReader[T](src.buf).Advance(src.off)

		value, ok := r.Read()
		if !ok {
			return shortBuffer(reflect.TypeFor[T](), SizeOf[T](), r.remainingBytes())
		}

		src.off = r.Advance(SizeOf[T]()).Offset()
		setValue(target, V(value))
		return nil
	}
}
