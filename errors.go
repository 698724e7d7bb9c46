package bytecast

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrShortBuffer is returned when fewer bytes are available than a value needs.
var ErrShortBuffer = errors.New("insufficient bytes")

// ErrTrailingBytes is returned by an exact Decoder when input is left after decoding.
var ErrTrailingBytes = errors.New("trailing bytes")

// NotSupportedError is returned by the Decoder for types it cannot fill from raw bytes.
type NotSupportedError struct {
	Type reflect.Type
}

func (n NotSupportedError) Error() string {
	return fmt.Sprintf("type %q is not supported", n.Type)
}

func shortBuffer(ty reflect.Type, need, have int) error {
	return fmt.Errorf("%s needs %d bytes, have %d: %w", ty, need, have, ErrShortBuffer)
}
