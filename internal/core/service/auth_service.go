package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// AuthService implements registration, login and logout against the
// credential store, binding the identity snapshot to the caller's session.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	validate *validator.Validate
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
	}
}

func (s *AuthService) Register(ctx context.Context, sessionID string, in ports.RegisterInput) (*domain.Identity, error) {
	if err := s.validate.Struct(in); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return nil, &domain.ValidationError{Violations: registerViolations(ve)}
		}
		return nil, fmt.Errorf("validate registration: %w", err)
	}

	role, _ := domain.ParseRole(in.Role) // oneof already enforced

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.attachIdentity(ctx, sessionID, created)
}

func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (*domain.Identity, error) {
	// Unknown email and wrong password must be indistinguishable so the
	// response never reveals which addresses are registered.
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.attachIdentity(ctx, sessionID, user)
}

// Logout destroys the session unconditionally. An absent session is a valid
// precondition, not an error; store failures propagate to the caller.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Destroy(ctx, sessionID)
}

// attachIdentity writes the snapshot into the session in a single Save so no
// partial mutation is ever observable.
func (s *AuthService) attachIdentity(ctx context.Context, sessionID string, user *domain.User) (*domain.Identity, error) {
	snap := domain.SnapshotOf(user)
	now := time.Now().UTC()

	data := &domain.SessionData{CreatedAt: now, LastSeenAt: now}
	if existing, err := s.sessions.Load(ctx, sessionID); err == nil {
		data.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("load session: %w", err)
	}
	data.Identity = &snap

	if err := s.sessions.Save(ctx, sessionID, data); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &snap, nil
}

// registerViolations converts validator errors into the user-facing message
// list rendered back on the registration form. All violations are reported,
// not just the first.
func registerViolations(ve validator.ValidationErrors) []string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Field() {
		case "Name":
			msgs = append(msgs, "Name is required")
		case "Email":
			msgs = append(msgs, "Please include a valid email")
		case "Password":
			msgs = append(msgs, "Please enter a password with 5 or more characters")
		case "Role":
			msgs = append(msgs, "Please select a valid role")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag()))
		}
	}
	return msgs
}
