package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	created int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Email
	}
	r.users[copy.Email] = cloneUser(copy)
	r.created++
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubSessionStore struct {
	sessions   map[string]*domain.SessionData
	destroyErr error
	saveErr    error
	destroys   int
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.SessionData)}
}

func (s *stubSessionStore) Load(_ context.Context, id string) (*domain.SessionData, error) {
	if data, ok := s.sessions[id]; ok {
		clone := *data
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (s *stubSessionStore) Save(_ context.Context, id string, data *domain.SessionData) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *data
	s.sessions[id] = &clone
	return nil
}

func (s *stubSessionStore) Destroy(_ context.Context, id string) error {
	s.destroys++
	if s.destroyErr != nil {
		return s.destroyErr
	}
	delete(s.sessions, id)
	return nil
}

func validInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "12345",
		Role:     "manager",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions)

	identity, err := svc.Register(context.Background(), "sess-1", validInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if identity.Role != domain.RoleManager {
		t.Fatalf("unexpected role: %s", identity.Role)
	}

	stored := repo.users["alice@example.com"]
	if stored == nil {
		t.Fatalf("expected user persisted")
	}
	if stored.PasswordHash == "12345" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	data, ok := sessions.sessions["sess-1"]
	if !ok || !data.Authenticated() {
		t.Fatalf("expected identity attached to session")
	}
	if data.Identity.Role != domain.RoleManager || data.Identity.Email != "alice@example.com" {
		t.Fatalf("unexpected session identity: %+v", data.Identity)
	}
}

func TestAuthService_Register_CollectsAllViolations(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions)

	_, err := svc.Register(context.Background(), "sess-1", ports.RegisterInput{
		Name:     "",
		Email:    "not-an-email",
		Password: "123",
		Role:     "superadmin",
	})

	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Violations) != 4 {
		t.Fatalf("expected all 4 violations reported, got %d: %v", len(ve.Violations), ve.Violations)
	}
	if repo.created != 0 {
		t.Fatalf("expected no user created, got %d", repo.created)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected session untouched")
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubSessionStore())

	in := validInput()
	in.Role = "root"
	_, err := svc.Register(context.Background(), "sess-1", in)
	if _, ok := domain.AsValidationError(err); !ok {
		t.Fatalf("expected ValidationError for bad role, got %v", err)
	}
	if repo.created != 0 {
		t.Fatalf("expected no user created")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions)

	if _, err := svc.Register(context.Background(), "sess-1", validInput()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	before := cloneUser(repo.users["alice@example.com"])

	in := validInput()
	in.Password = "different"
	in.Role = "admin"
	_, err := svc.Register(context.Background(), "sess-2", in)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.created != 1 {
		t.Fatalf("expected exactly one user created, got %d", repo.created)
	}

	after := repo.users["alice@example.com"]
	if after.PasswordHash != before.PasswordHash || after.Role != before.Role {
		t.Fatalf("existing user was modified")
	}
	if _, ok := sessions.sessions["sess-2"]; ok {
		t.Fatalf("failed registration must not mutate the session")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewAuthService(repo, sessions)

	if _, err := svc.Register(context.Background(), "sess-1", validInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	identity, err := svc.Login(context.Background(), "sess-2", "alice@example.com", "12345")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.Role != domain.RoleManager || identity.Name != "Alice" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	data := sessions.sessions["sess-2"]
	if !data.Authenticated() || data.Identity.Email != "alice@example.com" {
		t.Fatalf("expected snapshot attached to session")
	}
}

func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, newStubSessionStore())

	if _, err := svc.Register(context.Background(), "sess-1", validInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "sess-2", "alice@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "sess-2", "ghost@example.com", "12345")

	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("failure modes must be indistinguishable: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	sessions := newStubSessionStore()
	svc := NewAuthService(newStubUserRepo(), sessions)

	sessions.sessions["sess-1"] = &domain.SessionData{Identity: &domain.Identity{Role: domain.RoleUser}}

	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("first logout failed: %v", err)
	}
	if err := svc.Logout(context.Background(), "sess-1"); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if sessions.destroys != 2 {
		t.Fatalf("expected destroy issued both times, got %d", sessions.destroys)
	}
}

func TestAuthService_Logout_PropagatesStoreFailure(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.destroyErr = errors.New("redis down")
	svc := NewAuthService(newStubUserRepo(), sessions)

	if err := svc.Logout(context.Background(), "sess-1"); err == nil {
		t.Fatalf("expected store failure to propagate")
	}
}
