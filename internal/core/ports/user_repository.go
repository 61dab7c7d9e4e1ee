package ports

import (
	"context"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// UserRepository defines the credential store: persistence of user records
// keyed by unique email.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
