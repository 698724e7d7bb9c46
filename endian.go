package bytecast

import (
	"encoding/binary"
	"golang.org/x/sys/cpu"
)

// IsBigEndian reports whether the platform stores the most significant byte first.
const IsBigEndian = cpu.IsBigEndian

// NativeOrder returns the byte order used by every conversion in this package. It is
// informational: bytecast never converts between byte orders.
func NativeOrder() binary.ByteOrder {
	if IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
