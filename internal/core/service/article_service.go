package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// ArticleService implements the news CMS operations on top of the article
// repository.
type ArticleService struct {
	articles ports.ArticleRepository
	validate *validator.Validate
}

func NewArticleService(articles ports.ArticleRepository) *ArticleService {
	return &ArticleService{articles: articles, validate: validator.New()}
}

func (s *ArticleService) List(ctx context.Context) ([]domain.Article, error) {
	return s.articles.List(ctx)
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.articles.FindByID(ctx, id)
}

func (s *ArticleService) Create(ctx context.Context, author string, in ports.CreateArticleInput) (*domain.Article, error) {
	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
			}
			return nil, &domain.ValidationError{Violations: msgs}
		}
		return nil, fmt.Errorf("validate article: %w", err)
	}

	now := time.Now().UTC()
	article := &domain.Article{
		Title:     in.Title,
		Body:      in.Body,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.articles.Create(ctx, article)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.articles.Delete(ctx, id)
}
