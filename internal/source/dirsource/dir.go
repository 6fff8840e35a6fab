// Package dirsource implements a local directory input backend.
package dirsource

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/discochess/openingtally/internal/codec"
	"github.com/discochess/openingtally/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source reads PGN files from a local directory.
type Source struct {
	root   string
	suffix string
}

// New creates a new directory source rooted at the given directory.
// The directory must exist. Files are matched by suffix, with ".gz" and
// ".zst" compressed variants included.
func New(root, suffix string) (*Source, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	return &Source{
		root:   root,
		suffix: suffix,
	}, nil
}

// Name returns the root directory path.
func (s *Source) Name() string {
	return s.root
}

// List returns matching file names in directory listing order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !source.Matches(entry.Name(), s.suffix) {
			continue
		}
		names = append(names, entry.Name())
	}

	return names, nil
}

// Open opens the named file, decompressing it if needed.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, source.ErrNotFound
		}
		return nil, fmt.Errorf("opening file: %w", err)
	}

	return codec.Decompress(name, f)
}

// Close releases any resources held by the source.
func (s *Source) Close() error {
	return nil
}
