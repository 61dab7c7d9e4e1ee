// Package storage implements the filesystem-backed blob store used by the
// file manager. Files live flat inside a single uploads directory; names
// containing path separators are rejected outright.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// DiskStore stores uploads under a single directory on the local filesystem.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the uploads directory if needed and returns the store.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Write(_ context.Context, name string, content io.Reader) (int64, error) {
	path, err := s.path(name)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, content)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("write file: %w", err)
	}
	return n, nil
}

func (s *DiskStore) List(_ context.Context) ([]domain.StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read uploads dir: %w", err)
	}

	files := make([]domain.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		files = append(files, domain.StoredFile{
			Name:       entry.Name(),
			Size:       info.Size(),
			Kind:       domain.KindOfFile(entry.Name()),
			ModifiedAt: info.ModTime().UTC(),
		})
	}
	return files, nil
}

func (s *DiskStore) Remove(_ context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrFileNotFound
		}
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

// path joins name onto the store directory after checking it cannot escape.
func (s *DiskStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", domain.ErrInvalidFileName
	}
	return filepath.Join(s.dir, name), nil
}
