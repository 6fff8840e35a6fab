package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Compile-time check that Zstd implements Codec.
var _ Codec = Zstd{}

// Zstd decompresses zstd streams, the format Lichess and other archives
// publish bulk PGN dumps in.
type Zstd struct{}

// Reader wraps r to decompress zstd data.
func (Zstd) Reader(r io.Reader) (io.ReadCloser, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Extension returns "zst".
func (Zstd) Extension() string {
	return "zst"
}
