package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/WaleedUkhan/Backend-Development/internal/api/middleware"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// HomeHandler renders the landing page with the upload store summary.
type HomeHandler struct {
	fileService ports.FileService
	log         zerolog.Logger
}

func NewHomeHandler(fileService ports.FileService, log zerolog.Logger) *HomeHandler {
	return &HomeHandler{fileService: fileService, log: log}
}

func (h *HomeHandler) Home(c echo.Context) error {
	count, totalBytes, err := h.fileService.Stats(c.Request().Context())
	if err != nil {
		// The landing page still renders when the store is unreadable.
		h.log.Warn().Err(err).Msg("upload stats unavailable")
		count, totalBytes = 0, 0
	}

	return c.Render(http.StatusOK, "home.html", echo.Map{
		"Title":     "Home",
		"User":      middleware.Identity(c),
		"FileCount": count,
		"TotalMB":   float64(totalBytes) / (1024 * 1024),
	})
}
