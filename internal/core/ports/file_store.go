package ports

import (
	"context"
	"io"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// FileStore is the blob store backing the file manager. Names are flat:
// implementations must reject anything resembling a path.
type FileStore interface {
	// Write stores the content under name, failing if name is unsafe.
	Write(ctx context.Context, name string, content io.Reader) (int64, error)
	List(ctx context.Context) ([]domain.StoredFile, error)
	// Remove deletes the named file, or returns domain.ErrFileNotFound.
	Remove(ctx context.Context, name string) error
}
