package storage

import (
	"context"
	"os"
	"path/filepath"
)

// fsWriter writes each command straight to a file under root, the
// backend for local runs in place of a real object store.
type fsWriter struct {
	root string
}

func newFS(path string) (Writer, error) {
	if path == "" {
		path = "."
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}
	return &fsWriter{root: path}, nil
}

func (w *fsWriter) Download(ctx context.Context, url, filePath string) error {
	rec, err := fetch(ctx, url)
	if err != nil {
		return err
	}
	return w.write(filePath, rec.Content)
}

func (w *fsWriter) Save(filePath string, content []byte) error {
	return w.write(filePath, content)
}

func (w *fsWriter) write(filePath string, content []byte) error {
	full := filepath.Join(w.root, filePath)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}
	return os.WriteFile(full, content, 0644)
}

func (w *fsWriter) Close() error { return nil }

func init() {
	register("fs", newFS)
}
