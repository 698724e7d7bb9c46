package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// frame magic numbers, as the first four bytes of a stream
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

func readFile(path string, compression string) ([]byte, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer fp.Close()

	return readInput(fp, compression)
}

// readInput reads all of r, decompressing it as requested. With "auto" the compression is
// detected from the frame magic; input without a known magic is read as is.
func readInput(r io.Reader, compression string) ([]byte, error) {
	br := bufio.NewReader(r)

	if compression == "auto" {
		// a short input has no magic, the error shows up again in ReadAll
		head, _ := br.Peek(4)

		switch {
		case bytes.Equal(head, zstdMagic):
			compression = "zstd"
		case bytes.Equal(head, lz4Magic):
			compression = "lz4"
		default:
			compression = "none"
		}
	}

	switch compression {
	case "none":
		return io.ReadAll(br)

	case "zstd":
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}

		defer dec.Close()

		return io.ReadAll(dec)

	case "lz4":
		return io.ReadAll(lz4.NewReader(br))

	default:
		return nil, fmt.Errorf("unknown compression %q", compression)
	}
}
