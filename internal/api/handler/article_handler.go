package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/api/metrics"
	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// ArticleHandler serves the news CMS pages. Listing is public; creation is
// gated to manager-or-above and deletion to admin in the router.
type ArticleHandler struct {
	articleService ports.ArticleService
}

func NewArticleHandler(articleService ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) List(c echo.Context) error {
	articles, err := h.articleService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "articles.html", h.listData(c, articles, nil))
}

// Show renders one article. An unknown id surfaces ErrArticleNotFound and
// the error handler turns it into the 404 page.
func (h *ArticleHandler) Show(c echo.Context) error {
	article, err := h.articleService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	identity := middleware.Identity(c)
	return c.Render(http.StatusOK, "article.html", echo.Map{
		"Title":     article.Title,
		"Article":   article,
		"CanDelete": identity != nil && identity.Role == domain.RoleAdmin,
	})
}

func (h *ArticleHandler) Create(c echo.Context) error {
	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}

	identity := middleware.Identity(c)
	_, err := h.articleService.Create(c.Request().Context(), identity.Name, ports.CreateArticleInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			articles, listErr := h.articleService.List(c.Request().Context())
			if listErr != nil {
				return listErr
			}
			return c.Render(http.StatusOK, "articles.html", h.listData(c, articles, ve.Violations))
		}
		return err
	}

	metrics.ArticlesCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/articles")
}

func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articleService.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/articles")
}

func (h *ArticleHandler) listData(c echo.Context, articles []domain.Article, errs []string) echo.Map {
	identity := middleware.Identity(c)
	return echo.Map{
		"Title":     "News",
		"Articles":  articles,
		"Errors":    errs,
		"CanCreate": identity != nil && identity.Role.AtLeast(domain.RoleManager),
		"CanDelete": identity != nil && identity.Role == domain.RoleAdmin,
	}
}
