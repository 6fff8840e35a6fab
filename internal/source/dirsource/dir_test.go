package dirsource

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/discochess/openingtally/internal/source"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New("/nonexistent/path", ".pgn")
	if err == nil {
		t.Error("New() expected error for missing directory, got nil")
	}
}

func TestList_FiltersBySuffix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.pgn", []byte("x"))
	writeFile(t, dir, "b.pgn.gz", []byte("x"))
	writeFile(t, dir, "c.pgn.zst", []byte("x"))
	writeFile(t, dir, "notes.txt", []byte("x"))
	if err := os.Mkdir(filepath.Join(dir, "sub.pgn"), 0755); err != nil {
		t.Fatalf("Mkdir() error = %v", err)
	}

	s, err := New(dir, ".pgn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	names, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"a.pgn", "b.pgn.gz", "c.pgn.zst"}
	if len(names) != len(want) {
		t.Fatalf("List() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("List()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestList_EmptyDirectory(t *testing.T) {
	s, err := New(t.TempDir(), ".pgn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	names, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 0 {
		t.Errorf("List() = %v, want empty", names)
	}
}

func TestOpen_PlainFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("[Event \"Live Chess\"]\n\n1. e4 e5 *\n")
	writeFile(t, dir, "games.pgn", content)

	s, err := New(dir, ".pgn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	rc, err := s.Open(context.Background(), "games.pgn")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if err := rc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if string(got) != string(content) {
		t.Errorf("Open() read %q, want %q", got, content)
	}
}

func TestOpen_GzipFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("[Event \"Live Chess\"]\n\n1. d4 d5 *\n")

	f, err := os.Create(filepath.Join(dir, "games.pgn.gz"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write(content); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("gzip Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file Close() error = %v", err)
	}

	s, err := New(dir, ".pgn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	rc, err := s.Open(context.Background(), "games.pgn.gz")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	rc.Close()

	if string(got) != string(content) {
		t.Errorf("Open() read %q, want %q", got, content)
	}
}

func TestOpen_Missing(t *testing.T) {
	s, err := New(t.TempDir(), ".pgn")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer s.Close()

	_, err = s.Open(context.Background(), "missing.pgn")
	if !errors.Is(err, source.ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}
