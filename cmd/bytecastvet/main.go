// Command bytecastvet reports misuse of the bytecast package that the compiler cannot catch.
//
// Usage:
//
//	bytecastvet ./...
//
// or as a vet tool:
//
//	go vet -vettool=$(which bytecastvet) ./...
package main

import (
	"github.com/go-gum/bytecast/analysis/zerosize"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(zerosize.Analyzer)
}
