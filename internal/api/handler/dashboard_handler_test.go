package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/api/render"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

func newDashboardApp(t *testing.T, identity *domain.Identity) *echo.Echo {
	t.Helper()
	e := echo.New()
	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	e.Renderer = renderer

	inject := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetIdentity(c, identity)
			return next(c)
		}
	}

	h := NewDashboardHandler()
	g := e.Group("/dashboard", inject)
	g.GET("", h.Home)
	g.GET("/:role", h.Show)
	return e
}

func TestDashboard_RoutingTable(t *testing.T) {
	cases := []struct {
		name         string
		role         domain.Role
		path         string
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{"user requesting admin redirects home", domain.RoleUser, "/dashboard/admin", http.StatusFound, "/dashboard/user", ""},
		{"admin inherits manager view", domain.RoleAdmin, "/dashboard/manager", http.StatusOK, "", "Manager Dashboard"},
		{"manager requesting admin redirects home", domain.RoleManager, "/dashboard/admin", http.StatusFound, "/dashboard/manager", ""},
		{"unknown role redirects home", domain.RoleUser, "/dashboard/bogus", http.StatusFound, "/dashboard/user", ""},
		{"admin serves admin view", domain.RoleAdmin, "/dashboard/admin", http.StatusOK, "", "Admin Dashboard"},
		{"user view open to any role", domain.RoleAdmin, "/dashboard/user", http.StatusOK, "", "User Dashboard"},
		{"bare dashboard redirects to own role", domain.RoleManager, "/dashboard", http.StatusFound, "/dashboard/manager", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newDashboardApp(t, &domain.Identity{Name: "Test", Email: "t@x.com", Role: tc.role})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}
			if tc.wantLocation != "" && rec.Header().Get("Location") != tc.wantLocation {
				t.Fatalf("expected redirect to %q, got %q", tc.wantLocation, rec.Header().Get("Location"))
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Fatalf("expected body to contain %q", tc.wantBody)
			}
		})
	}
}
