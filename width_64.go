//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || sparc64 || wasm

package bytecast

// Pod32 contains the four byte members of Pod.
type Pod32 interface {
	~int32 | ~uint32
}

// Pod64 contains the eight byte members of Pod. On this architecture int, uint and uintptr
// are eight bytes wide.
type Pod64 interface {
	~int64 | ~uint64 | ~int | ~uint | ~uintptr
}
