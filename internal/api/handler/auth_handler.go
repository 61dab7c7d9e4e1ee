package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/WaleedUkhan/Backend-Development/internal/api/metrics"
	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// AuthHandler serves the login/register forms and drives the auth service.
type AuthHandler struct {
	authService ports.AuthService
	cookieName  string
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, cookieName string, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, cookieName: cookieName, log: log}
}

func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"Title": "Login"})
}

func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{"Title": "Register"})
}

// Register handles the registration form. Recoverable failures re-render the
// form with the complete violation list and HTTP 200; success binds the
// identity to the session and redirects to the role's dashboard.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	identity, err := h.authService.Register(c.Request().Context(), middleware.SessionID(c), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return c.Render(http.StatusOK, "register.html", echo.Map{
				"Title":  "Register",
				"Errors": ve.Violations,
			})
		}
		if errors.Is(err, domain.ErrUserExists) {
			return c.Render(http.StatusOK, "register.html", echo.Map{
				"Title":  "Register",
				"Errors": []string{"User already exists"},
			})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(identity.Role.String()).Inc()
	return c.Redirect(http.StatusFound, "/dashboard/"+identity.Role.String())
}

// Login authenticates the form credentials. Unknown email and wrong password
// render the same generic message so neither case is distinguishable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	identity, err := h.authService.Login(c.Request().Context(), middleware.SessionID(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.Render(http.StatusOK, "login.html", echo.Map{
				"Title":  "Login",
				"Errors": []string{"Invalid credentials"},
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.Redirect(http.StatusFound, "/dashboard/"+identity.Role.String())
}

// Logout destroys the session. A store failure is logged and the caller is
// sent back to the dashboard rather than crashing; on success the cookie is
// expired and the caller lands on the home page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.SessionID(c)); err != nil {
		h.log.Error().Err(err).Msg("session destroy failed")
		return c.Redirect(http.StatusFound, "/dashboard")
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusFound, "/")
}
