package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// allowedExtensions mirrors the upload filter of the file manager: anything
// outside this set is rejected before a byte is written.
var allowedExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {},
	".pdf": {}, ".doc": {}, ".docx": {}, ".txt": {},
	".mp4": {}, ".mp3": {}, ".zip": {}, ".rar": {},
}

// FileService validates uploads and delegates blob handling to the store.
type FileService struct {
	store   ports.FileStore
	maxSize int64
}

// NewFileService builds a FileService with the given size cap in bytes.
// A non-positive cap falls back to 10 MiB.
func NewFileService(store ports.FileStore, maxSize int64) *FileService {
	if maxSize <= 0 {
		maxSize = 10 << 20
	}
	return &FileService{store: store, maxSize: maxSize}
}

func (s *FileService) Upload(ctx context.Context, in ports.UploadInput) (*domain.StoredFile, error) {
	ext := strings.ToLower(path.Ext(in.OriginalName))
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, domain.ErrFileTypeNotAllowed
	}
	if in.Size > s.maxSize {
		return nil, domain.ErrFileTooLarge
	}

	name, err := storedName(in.Field, ext)
	if err != nil {
		return nil, err
	}

	size, err := s.store.Write(ctx, name, in.Content)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &domain.StoredFile{
		Name:       name,
		Size:       size,
		Kind:       domain.KindOfFile(name),
		ModifiedAt: time.Now().UTC(),
	}, nil
}

// List returns the stored files sorted newest first.
func (s *FileService) List(ctx context.Context) ([]domain.StoredFile, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModifiedAt.After(files[j].ModifiedAt)
	})
	return files, nil
}

func (s *FileService) Delete(ctx context.Context, name string) error {
	return s.store.Remove(ctx, name)
}

func (s *FileService) Stats(ctx context.Context) (int, int64, error) {
	files, err := s.store.List(ctx)
	if err != nil {
		return 0, 0, err
	}
	var total int64
	for _, f := range files {
		total += f.Size
	}
	return len(files), total, nil
}

// storedName builds a collision-free name: <field>-<unix-nano>-<rand><ext>.
func storedName(field, ext string) (string, error) {
	if field == "" {
		field = "file"
	}
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate file name: %w", err)
	}
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixNano(), hex.EncodeToString(b), ext), nil
}
