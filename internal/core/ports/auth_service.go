package ports

import (
	"context"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// RegisterInput is the validated boundary type for registration.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=5"`
	Role     string `validate:"required,oneof=user manager admin"`
}

// AuthService creates and authenticates users and binds the resulting
// identity snapshot to the caller's session. Each operation either mutates
// the session fully or not at all.
type AuthService interface {
	Register(ctx context.Context, sessionID string, in RegisterInput) (*domain.Identity, error)
	Login(ctx context.Context, sessionID, email, password string) (*domain.Identity, error)
	Logout(ctx context.Context, sessionID string) error
}
