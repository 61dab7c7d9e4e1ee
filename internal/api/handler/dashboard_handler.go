package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// DashboardHandler resolves which role view a request is entitled to see.
// All routes here sit behind the RequireAuth gate, so the identity snapshot
// is always present.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Home sends the caller to their own role's dashboard.
func (h *DashboardHandler) Home(c echo.Context) error {
	identity := middleware.Identity(c)
	return c.Redirect(http.StatusFound, "/dashboard/"+identity.Role.String())
}

// Show serves /dashboard/:role. A role the caller is entitled to renders its
// view; anything else redirects to the caller's own dashboard. Exactly one
// of the two happens per request.
func (h *DashboardHandler) Show(c echo.Context) error {
	identity := middleware.Identity(c)

	view, serve := domain.ResolveDashboard(c.Param("role"), identity.Role)
	if !serve {
		return c.Redirect(http.StatusFound, "/dashboard/"+view.String())
	}

	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Title": dashboardTitle(view),
		"View":  view,
		"User":  identity,
	})
}

func dashboardTitle(view domain.Role) string {
	switch view {
	case domain.RoleAdmin:
		return "Admin Dashboard"
	case domain.RoleManager:
		return "Manager Dashboard"
	default:
		return "User Dashboard"
	}
}
