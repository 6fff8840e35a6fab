// Package memsource provides an in-memory input source for testing.
package memsource

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"github.com/discochess/openingtally/internal/codec"
	"github.com/discochess/openingtally/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source is an in-memory source for testing.
type Source struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// New creates a new in-memory source.
func New() *Source {
	return &Source{
		files: make(map[string][]byte),
	}
}

// SetFile sets the content for a named input (for test setup).
// The data is copied to prevent caller mutations from affecting the source.
func (s *Source) SetFile(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]byte, len(data))
	copy(copied, data)
	s.files[name] = copied
}

// Name returns a fixed description for diagnostics.
func (s *Source) Name() string {
	return "memory"
}

// List returns all file names in lexical order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Open opens the named input from memory.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	s.mu.RLock()
	data, ok := s.files[name]
	s.mu.RUnlock()

	if !ok {
		return nil, source.ErrNotFound
	}
	return codec.Decompress(name, io.NopCloser(bytes.NewReader(data)))
}

// Close is a no-op for the memory source.
func (s *Source) Close() error {
	return nil
}
