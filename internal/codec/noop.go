package codec

import "io"

// Compile-time check that Noop implements Codec.
var _ Codec = Noop{}

// Noop passes data through uncompressed.
type Noop struct{}

// Reader returns r wrapped as a ReadCloser (no decompression).
func (Noop) Reader(r io.Reader) (io.ReadCloser, error) {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc, nil
	}
	return io.NopCloser(r), nil
}

// Extension returns empty string.
func (Noop) Extension() string {
	return ""
}
