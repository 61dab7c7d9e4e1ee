package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/WaleedUkhan/Backend-Development/internal/api/metrics"
	"github.com/WaleedUkhan/Backend-Development/internal/core/domain"
	"github.com/WaleedUkhan/Backend-Development/internal/core/ports"
)

// uploadFields are the multipart field names accepted by the upload form.
var uploadFields = []string{"singleFile", "multipleFiles"}

// FileHandler serves the upload form, the file manager listing, and the
// JSON delete endpoint.
type FileHandler struct {
	fileService ports.FileService
}

func NewFileHandler(fileService ports.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

func (h *FileHandler) ShowUpload(c echo.Context) error {
	return c.Render(http.StatusOK, "upload.html", echo.Map{"Title": "Upload Files"})
}

// Upload stores every file of the multipart form. A rejected file (type or
// size) aborts with a rendered failure page; nothing after it is written.
func (h *FileHandler) Upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	description := c.FormValue("description")
	if description == "" {
		description = "No description provided"
	}

	var stored []domain.StoredFile
	for _, field := range uploadFields {
		for _, fh := range form.File[field] {
			file, err := h.uploadOne(c, field, fh)
			if err != nil {
				if errors.Is(err, domain.ErrFileTypeNotAllowed) || errors.Is(err, domain.ErrFileTooLarge) {
					metrics.UploadsTotal.WithLabelValues("rejected").Inc()
					return c.Render(http.StatusOK, "upload_result.html", echo.Map{
						"Title":       "Upload Failed",
						"Message":     fmt.Sprintf("%s: %s", fh.Filename, err),
						"Description": description,
					})
				}
				metrics.UploadsTotal.WithLabelValues("error").Inc()
				return err
			}
			stored = append(stored, *file)
		}
	}

	if len(stored) == 0 {
		return c.Render(http.StatusOK, "upload_result.html", echo.Map{
			"Title":       "Upload Failed",
			"Message":     "No files were uploaded.",
			"Description": description,
		})
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return c.Render(http.StatusOK, "upload_result.html", echo.Map{
		"Title":       "Upload Successful",
		"Message":     fmt.Sprintf("Successfully uploaded %d file(s)", len(stored)),
		"Files":       stored,
		"Description": description,
	})
}

func (h *FileHandler) uploadOne(c echo.Context, field string, fh *multipart.FileHeader) (*domain.StoredFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	return h.fileService.Upload(c.Request().Context(), ports.UploadInput{
		Field:        field,
		OriginalName: fh.Filename,
		Size:         fh.Size,
		Content:      src,
	})
}

func (h *FileHandler) List(c echo.Context) error {
	files, err := h.fileService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "files.html", echo.Map{
		"Title": "File Manager",
		"Files": files,
	})
}

// Delete answers in JSON, matching the file manager's fetch-based client.
func (h *FileHandler) Delete(c echo.Context) error {
	name := c.Param("name")
	if err := h.fileService.Delete(c.Request().Context(), name); err != nil {
		switch {
		case errors.Is(err, domain.ErrFileNotFound), errors.Is(err, domain.ErrInvalidFileName):
			return c.JSON(http.StatusNotFound, deleteFileResponse{Success: false, Message: "File not found"})
		default:
			return c.JSON(http.StatusInternalServerError, deleteFileResponse{Success: false, Message: "Error deleting file"})
		}
	}
	return c.JSON(http.StatusOK, deleteFileResponse{Success: true, Message: "File deleted successfully"})
}
