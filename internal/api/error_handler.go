package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the error page, so no failure path ever ends in a raw trace.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)

		title := http.StatusText(code)
		if code == http.StatusNotFound {
			title = "Page Not Found"
		}

		renderErr := c.Render(code, "error.html", echo.Map{
			"Title":   title,
			"Message": msg,
		})
		if renderErr != nil {
			log.Error().Err(renderErr).Msg("error page render failed")
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, gate denials).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrArticleNotFound):
		return http.StatusNotFound, "The article you are looking for does not exist."
	case errors.Is(err, domain.ErrFileNotFound):
		return http.StatusNotFound, "The file you are looking for does not exist."
	case errors.Is(err, domain.ErrInvalidFileName):
		return http.StatusBadRequest, "Invalid file name."
	case errors.Is(err, domain.ErrFileTypeNotAllowed):
		return http.StatusBadRequest, "File type not allowed!"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusBadRequest, "File too large! Maximum size is 10MB."
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Something went wrong!"
}
