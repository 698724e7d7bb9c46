package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-gum/bytecast"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

type options struct {
	Type        string
	Offset      int
	Count       int
	Format      string
	Compression string
	Jobs        int
}

// dumpers decodes a buffer as a sequence of values of the named type.
var dumpers = map[string]func(io.Writer, []byte, options) (int, error){
	"i8":   dump[int8],
	"u8":   dump[uint8],
	"i16":  dump[int16],
	"u16":  dump[uint16],
	"i32":  dump[int32],
	"u32":  dump[uint32],
	"i64":  dump[int64],
	"u64":  dump[uint64],
	"int":  dump[int],
	"uint": dump[uint],
}

// dump writes one line per value of type T found in buf after opts.Offset, at most opts.Count
// values if Count is not negative. It returns the number of values written.
func dump[T constraints.Integer](w io.Writer, buf []byte, opts options) (int, error) {
	size := bytecast.SizeOf[T]()

	formatValue, err := formatterOf[T](opts.Format)
	if err != nil {
		return 0, err
	}

	r := bytecast.NewReader[T](buf).Advance(opts.Offset)
	pos := r.Offset()

	var written int
	for value := range r.All() {
		if opts.Count >= 0 && written == opts.Count {
			break
		}

		if _, err := fmt.Fprintf(w, "%08x  %s\n", pos, formatValue(value)); err != nil {
			return written, err
		}

		pos += size
		written++
	}

	return written, nil
}

func formatterOf[T constraints.Integer](format string) (func(T) string, error) {
	switch format {
	case "dec":
		return func(value T) string {
			return fmt.Sprintf("%d", value)
		}, nil

	case "hex":
		size := bytecast.SizeOf[T]()
		mask := ^uint64(0) >> (64 - 8*size)
		return func(value T) string {
			return fmt.Sprintf("0x%0*x", 2*size, uint64(value)&mask)
		}, nil

	case "bin":
		return func(value T) string {
			return bytecast.BitsOf(value).String()
		}, nil

	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func dumpBuffer(w io.Writer, buf []byte, opts options) (int, error) {
	dumper, ok := dumpers[opts.Type]
	if !ok {
		return 0, fmt.Errorf("unknown type %q", opts.Type)
	}

	return dumper(w, buf, opts)
}

// run dumps the given files, or stdin if there are none. Files are decoded concurrently and
// printed in the order of paths.
func run(ctx context.Context, logger *slog.Logger, opts options, paths []string, stdin io.Reader, stdout io.Writer) error {
	if _, ok := dumpers[opts.Type]; !ok {
		return fmt.Errorf("unknown type %q", opts.Type)
	}

	if len(paths) == 0 {
		buf, err := readInput(stdin, opts.Compression)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		written, err := dumpBuffer(stdout, buf, opts)
		logger.Debug("Decoded stdin", slog.Int("bytes", len(buf)), slog.Int("values", written))
		return err
	}

	outputs := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for idx, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			buf, err := readFile(path, opts.Compression)
			if err != nil {
				return fmt.Errorf("read %q: %w", path, err)
			}

			written, err := dumpBuffer(&outputs[idx], buf, opts)
			if err != nil {
				return fmt.Errorf("dump %q: %w", path, err)
			}

			logger.Debug("Decoded file",
				slog.String("path", path),
				slog.Int("bytes", len(buf)),
				slog.Int("values", written),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for idx, path := range paths {
		if len(paths) > 1 {
			if _, err := fmt.Fprintf(stdout, "%s:\n", path); err != nil {
				return err
			}
		}

		if _, err := outputs[idx].WriteTo(stdout); err != nil {
			return err
		}
	}

	return nil
}
