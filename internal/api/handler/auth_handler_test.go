package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/WaleedUkhan/Backend-Development/internal/api/render"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

type stubAuthService struct {
	registerIdentity *domain.Identity
	registerErr      error
	loginIdentity    *domain.Identity
	loginErr         error
	logoutErr        error
	gotRegister      ports.RegisterInput
}

func (s *stubAuthService) Register(_ context.Context, _ string, in ports.RegisterInput) (*domain.Identity, error) {
	s.gotRegister = in
	return s.registerIdentity, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _, _ string) (*domain.Identity, error) {
	return s.loginIdentity, s.loginErr
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

var _ ports.AuthService = (*stubAuthService)(nil)

func newAuthApp(t *testing.T, svc ports.AuthService) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer

	h := NewAuthHandler(svc, "bd_session", zerolog.Nop())
	e.GET("/auth/login", h.ShowLogin)
	e.POST("/auth/login", h.Login)
	e.GET("/auth/register", h.ShowRegister)
	e.POST("/auth/register", h.Register)
	e.GET("/auth/logout", h.Logout)
	return e
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Register_RedirectsToRoleDashboard(t *testing.T) {
	svc := &stubAuthService{registerIdentity: &domain.Identity{Role: domain.RoleManager}}
	e := newAuthApp(t, svc)

	rec := postForm(e, "/auth/register", url.Values{
		"name":     {"Alice"},
		"email":    {"a@x.com"},
		"password": {"12345"},
		"role":     {"manager"},
	})

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard/manager" {
		t.Fatalf("expected redirect to /dashboard/manager, got %q", loc)
	}
	if svc.gotRegister.Email != "a@x.com" || svc.gotRegister.Role != "manager" {
		t.Fatalf("unexpected input forwarded: %+v", svc.gotRegister)
	}
}

func TestAuthHandler_Register_RendersAllViolations(t *testing.T) {
	svc := &stubAuthService{registerErr: &domain.ValidationError{
		Violations: []string{"Name is required", "Please select a valid role"},
	}}
	e := newAuthApp(t, svc)

	rec := postForm(e, "/auth/register", url.Values{})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Name is required") || !strings.Contains(body, "Please select a valid role") {
		t.Fatalf("expected every violation rendered, got: %s", body)
	}
}

func TestAuthHandler_Register_DuplicateUser(t *testing.T) {
	svc := &stubAuthService{registerErr: domain.ErrUserExists}
	e := newAuthApp(t, svc)

	rec := postForm(e, "/auth/register", url.Values{"email": {"a@x.com"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "User already exists") {
		t.Fatalf("expected duplicate message rendered")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	e := newAuthApp(t, svc)

	rec := postForm(e, "/auth/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"wrong"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("expected generic error rendered")
	}
}

func TestAuthHandler_Login_RedirectsToRoleDashboard(t *testing.T) {
	svc := &stubAuthService{loginIdentity: &domain.Identity{Role: domain.RoleAdmin}}
	e := newAuthApp(t, svc)

	rec := postForm(e, "/auth/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"12345"},
	})

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard/admin" {
		t.Fatalf("expected redirect to /dashboard/admin, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestAuthHandler_Logout_ExpiresCookieAndRedirectsHome(t *testing.T) {
	e := newAuthApp(t, &stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	expired := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "bd_session" && ck.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Fatalf("expected session cookie expired")
	}
}

func TestAuthHandler_Logout_StoreFailureFallsBack(t *testing.T) {
	e := newAuthApp(t, &stubAuthService{logoutErr: errors.New("redis down")})

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected fallback redirect to /dashboard, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
