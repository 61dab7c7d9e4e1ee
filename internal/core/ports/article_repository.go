package ports

import (
	"context"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// ArticleRepository persists news articles.
type ArticleRepository interface {
	List(ctx context.Context) ([]domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
