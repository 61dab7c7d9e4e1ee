package ports

import (
	"context"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// CreateArticleInput is the validated boundary type for article creation.
type CreateArticleInput struct {
	Title string `validate:"required"`
	Body  string `validate:"required"`
}

// ArticleService implements the news CMS operations.
type ArticleService interface {
	List(ctx context.Context) ([]domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, author string, in CreateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
