package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes uploads under a directory served as /static. The public
// path recorded in catalog rows uses forward slashes regardless of OS.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	filename := uniqueName(name)

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(s.dir, filename)), nil
}
