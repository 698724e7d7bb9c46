package bytecast

type ByteView struct {
	b []byte
}

func RawView[T any](value *T) ByteView {
	return ByteView{}
}

func View[T any](value *T) ByteView {
	return ByteView{}
}
