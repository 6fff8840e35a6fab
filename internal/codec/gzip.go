package codec

import (
	"compress/gzip"
	"io"
)

// Compile-time check that Gzip implements Codec.
var _ Codec = Gzip{}

// Gzip decompresses gzip streams.
type Gzip struct{}

// Reader wraps r to decompress gzip data.
func (Gzip) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Extension returns "gz".
func (Gzip) Extension() string {
	return "gz"
}
