// Package source defines the input backend interface for reading PGN streams.
package source

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/discochess/openingtally/internal/codec"
)

// ErrNotFound is returned when a named input does not exist in the source.
var ErrNotFound = errors.New("source: input not found")

// Source defines the interface for input backends.
// Implementations handle path formats and storage details internally.
type Source interface {
	// Name describes the source for diagnostics, e.g. a directory path
	// or bucket URL.
	Name() string

	// List returns the names of all inputs matching the configured
	// suffix, in the order the backend lists them.
	List(ctx context.Context) ([]string, error)

	// Open opens the named input for reading. Compressed inputs are
	// decompressed transparently.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Close releases any resources held by the source.
	Close() error
}

// Matches reports whether name matches the suffix, allowing a trailing
// compression extension recognized by the codec layer.
func Matches(name, suffix string) bool {
	if strings.HasSuffix(name, suffix) {
		return true
	}
	for _, ext := range codec.Extensions {
		if strings.HasSuffix(name, suffix+"."+ext) {
			return true
		}
	}
	return false
}
