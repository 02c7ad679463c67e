package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
)

// Machine-readable error codes, stable across handlers so clients can
// branch without parsing message text.
const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeNotFound             = "NOT_FOUND"
	CodeFileTooLarge         = "FILE_TOO_LARGE"
	CodeUnsupportedMediaType = "UNSUPPORTED_MEDIA_TYPE"
	CodeUploadException      = "UPLOAD_EXCEPTION"
	CodeConfigurationError   = "CONFIGURATION_ERROR"
	CodeNotImplemented       = "NOT_IMPLEMENTED"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// ErrorBody is the inner error object of every error response
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope for all error responses
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message, details string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: ErrorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// writeServiceError translates domain errors into HTTP responses.
// Anything unrecognized falls through to INTERNAL_ERROR.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sitecontent.ErrSectionNotFound):
		writeError(w, r, http.StatusNotFound, CodeNotFound, "section not found", "")
	case errors.Is(err, sitecontent.ErrMediaNotFound):
		writeError(w, r, http.StatusNotFound, CodeNotFound, "media asset not found", "")
	case errors.Is(err, sitecontent.ErrUnknownSectionType),
		errors.Is(err, sitecontent.ErrInvalidSectionStatus),
		errors.Is(err, sitecontent.ErrInvalidPayload),
		errors.Is(err, sitecontent.ErrMissingFile):
		writeError(w, r, http.StatusBadRequest, CodeValidationError, err.Error(), "")
	case errors.Is(err, sitecontent.ErrFileTooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, CodeFileTooLarge, err.Error(), "")
	case errors.Is(err, sitecontent.ErrUnsupportedMediaType):
		writeError(w, r, http.StatusUnsupportedMediaType, CodeUnsupportedMediaType, err.Error(), "")
	case errors.Is(err, sitecontent.ErrNotConfigured),
		errors.Is(err, sitecontent.ErrStorageBackendNotFound):
		// Upload errors can wrap configuration errors; this case must
		// come first.
		slog.Error("request hit unconfigured backend", "error", err)
		writeError(w, r, http.StatusInternalServerError, CodeConfigurationError, "service backend is not configured", "")
	case errors.Is(err, sitecontent.ErrUploadFailed):
		slog.Error("media upload failed", "error", err)
		writeError(w, r, http.StatusInternalServerError, CodeUploadException, "upload failed", "")
	case errors.Is(err, sitecontent.ErrNotImplemented):
		writeError(w, r, http.StatusNotImplemented, CodeNotImplemented, "operation not implemented", "")
	default:
		slog.Error("unhandled service error", "error", err)
		writeError(w, r, http.StatusInternalServerError, CodeInternalError, "internal error", "")
	}
}
