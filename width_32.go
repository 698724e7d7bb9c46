//go:build 386 || arm || mips || mipsle

package bytecast

// Pod32 contains the four byte members of Pod. On this architecture int, uint and uintptr
// are four bytes wide.
type Pod32 interface {
	~int32 | ~uint32 | ~int | ~uint | ~uintptr
}

// Pod64 contains the eight byte members of Pod.
type Pod64 interface {
	~int64 | ~uint64
}
