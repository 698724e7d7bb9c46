// The bytedump command prints the contents of binary files as a sequence of native-order
// integers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
)

var (
	valueType = flag.String("type", "u8",
		"type of the values: i8, u8, i16, u16, i32, u32, i64, u64, int or uint")
	offset = flag.Int("offset", 0, "number of bytes to skip before the first value")
	count  = flag.Int("count", -1, "maximum number of values to print per file, -1 for all")
	format = flag.String("format", "dec", "output format: dec, hex or bin")
	comp   = flag.String("compression", "auto",
		"compression of the input: auto, none, zstd or lz4")
	jobs    = flag.Int("jobs", runtime.NumCPU(), "number of files decoded concurrently")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintln(out, "usage: bytedump [flags] [file ...]")
		fmt.Fprintln(out, "  prints each file, or stdin if no file is given, as native-order integers")
		fmt.Fprintln(out)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *jobs < 1 {
		flag.Usage()
		os.Exit(2)
	}

	opts := options{
		Type:        *valueType,
		Offset:      *offset,
		Count:       *count,
		Format:      *format,
		Compression: *comp,
		Jobs:        *jobs,
	}

	if err := run(context.Background(), logger, opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		logger.Error("Failed to dump input", slog.Any("err", err))
		os.Exit(1)
	}
}
