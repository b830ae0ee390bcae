package server

import (
	"errors"
	"time"

	"simplesocial/internal/middleware"
	"simplesocial/internal/models"
	"simplesocial/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadResponse is the API response after a successful media upload.
type UploadResponse struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	URL       string `json:"url"`
	FileType  string `json:"file_type"`
	FileName  string `json:"file_name"`
	CreatedAt string `json:"created_at"`
}

// UploadMedia handles POST /upload. Multipart form fields: file (binary),
// caption (text, optional).
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("No file uploaded"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Unable to read uploaded file"))
	}
	defer func() { _ = src.Close() }()

	post, err := s.uploadService.Upload(c.UserContext(), service.UploadInput{
		UserID:      userID,
		File:        src,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Caption:     c.FormValue("caption", ""),
	})
	if err != nil {
		middleware.UploadOutcomes.WithLabelValues(outcomeLabel(err)).Inc()
		return models.RespondWithError(c, uploadErrorStatus(err), err)
	}
	middleware.UploadOutcomes.WithLabelValues("success").Inc()

	return c.JSON(UploadResponse{
		ID:        post.ID,
		Caption:   post.Caption,
		URL:       post.URL,
		FileType:  post.FileType,
		FileName:  post.FileName,
		CreatedAt: post.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// uploadErrorStatus maps pipeline errors to HTTP status codes. Validation
// problems are the client's fault; everything else in the pipeline is a
// server-side failure reported as 500 with a detail message.
func uploadErrorStatus(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == "VALIDATION_ERROR" {
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func outcomeLabel(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "STAGING_FAILED":
			return "staging_failed"
		case "UPLOAD_FAILED":
			return "upload_failed"
		case "STORE_UNAVAILABLE":
			return "store_unavailable"
		}
	}
	return "error"
}
