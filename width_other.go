//go:build !amd64 && !arm64 && !loong64 && !mips64 && !mips64le && !ppc64 && !ppc64le && !riscv64 && !s390x && !sparc64 && !wasm && !386 && !arm && !mips && !mipsle

package bytecast

// Pod32 contains the four byte members of Pod. The width of int, uint and uintptr is not
// known for this architecture, so they are left out of every width family.
type Pod32 interface {
	~int32 | ~uint32
}

// Pod64 contains the eight byte members of Pod.
type Pod64 interface {
	~int64 | ~uint64
}
