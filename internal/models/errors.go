package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response. The detail
// field carries the human-readable message the frontend displays.
type ErrorResponse struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// NewStagingError wraps an I/O failure while writing an upload to its
// temporary location.
func NewStagingError(err error) *AppError {
	return &AppError{
		Code:    "STAGING_FAILED",
		Message: "Failed to stage uploaded file",
		Err:     err,
	}
}

// NewUploadError wraps a media host failure: transport error, non-2xx
// response, or a response with no URL.
func NewUploadError(err error) *AppError {
	return &AppError{
		Code:    "UPLOAD_FAILED",
		Message: "Media upload failed",
		Err:     err,
	}
}

// NewStoreError wraps a persistence failure. No partial Post is left behind
// when this is returned.
func NewStoreError(err error) *AppError {
	return &AppError{
		Code:    "STORE_UNAVAILABLE",
		Message: "Post store unavailable",
		Err:     err,
	}
}

// NewMalformedURLError signals a canonical media URL that violates the
// provider's positional path contract.
func NewMalformedURLError(url string) *AppError {
	return &AppError{
		Code:    "MALFORMED_MEDIA_URL",
		Message: fmt.Sprintf("Media URL %q is too short for transformation", url),
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Detail: appErr.Message,
			Code:   appErr.Code,
		}
	} else {
		response = ErrorResponse{
			Detail: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}
