// Package gcssource implements a Google Cloud Storage input backend.
package gcssource

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/discochess/openingtally/internal/codec"
	"github.com/discochess/openingtally/internal/source"
)

// Compile-time check that Source implements source.Source.
var _ source.Source = (*Source)(nil)

// Source reads PGN objects from a Google Cloud Storage bucket.
type Source struct {
	client *storage.Client
	bucket *storage.BucketHandle
	name   string
	prefix string
	suffix string
}

// New creates a new GCS source. The bucket must already exist.
// Objects are matched by suffix, with compressed variants included.
func New(ctx context.Context, bucketName, suffix string, opts ...Option) (*Source, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	s := &Source{
		client: client,
		bucket: client.Bucket(bucketName),
		name:   bucketName,
		suffix: suffix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Option configures a Source.
type Option func(*Source)

// WithPrefix sets a key prefix for all operations.
func WithPrefix(prefix string) Option {
	return func(s *Source) {
		s.prefix = strings.TrimSuffix(prefix, "/")
		if s.prefix != "" {
			s.prefix += "/"
		}
	}
}

// Name returns the bucket URL for diagnostics.
func (s *Source) Name() string {
	return "gs://" + s.name + "/" + s.prefix
}

// List returns matching object names under the prefix, in listing order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	var names []string

	it := s.bucket.Objects(ctx, &storage.Query{Prefix: s.prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}

		name := strings.TrimPrefix(attrs.Name, s.prefix)
		if !source.Matches(name, s.suffix) {
			continue
		}
		names = append(names, name)
	}

	return names, nil
}

// Open opens the named object, decompressing it if needed.
func (s *Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj := s.bucket.Object(s.prefix + name)

	reader, err := obj.NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil, source.ErrNotFound
		}
		return nil, fmt.Errorf("creating reader: %w", err)
	}

	return codec.Decompress(name, reader)
}

// Close releases resources.
func (s *Source) Close() error {
	return s.client.Close()
}
