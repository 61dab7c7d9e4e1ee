package ports

import (
	"context"
	"io"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// UploadInput describes one incoming multipart file.
type UploadInput struct {
	Field        string
	OriginalName string
	Size         int64
	Content      io.Reader
}

// FileService validates and stores uploads and manages the listing.
type FileService interface {
	Upload(ctx context.Context, in UploadInput) (*domain.StoredFile, error)
	List(ctx context.Context) ([]domain.StoredFile, error)
	Delete(ctx context.Context, name string) error
	// Stats summarises the store for the home page.
	Stats(ctx context.Context) (count int, totalBytes int64, err error)
}
