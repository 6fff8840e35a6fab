// Package codec provides transparent decompression for PGN input streams.
package codec

import (
	"io"
	"strings"
)

// Codec decompresses data read from an input stream.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for no compression.
	Extension() string
}

// Extensions lists the compression extensions recognized by ForName.
var Extensions = []string{"gz", "zst"}

// ForName returns the codec implied by the file name's extension.
// Unrecognized extensions get the no-op codec.
func ForName(name string) Codec {
	switch {
	case strings.HasSuffix(name, ".gz"):
		return Gzip{}
	case strings.HasSuffix(name, ".zst"):
		return Zstd{}
	default:
		return Noop{}
	}
}

// Decompress wraps rc with the codec implied by name.
// Closing the returned reader closes both the decompressor and rc.
func Decompress(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	decompressor, err := ForName(name).Reader(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	// The no-op codec hands back rc itself; chaining would close it twice.
	if decompressor == rc {
		return rc, nil
	}
	return &chainedCloser{ReadCloser: decompressor, underlying: rc}, nil
}

// chainedCloser closes the decompressor first, then the underlying stream.
type chainedCloser struct {
	io.ReadCloser
	underlying io.ReadCloser
}

func (c *chainedCloser) Close() error {
	err := c.ReadCloser.Close()
	if cerr := c.underlying.Close(); err == nil {
		err = cerr
	}
	return err
}
