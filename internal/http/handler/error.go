package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"journalfetch/internal/http/middleware"
	"journalfetch/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "JOURNAL_NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// User-facing texts for each outcome of the journal screen.
const (
	MsgDownloaded      = "File downloaded successfully."
	MsgDeleted         = "File deleted."
	MsgJournalNotFound = "A journal with this ID does not exist."
	MsgFileNotFound    = "File not found."
	MsgOpenFailed      = "Could not open the file."
	MsgUnsupported     = "Viewing documents is not supported on this system."
	MsgWriteFailed     = "Could not save the file."
	MsgDeleteFailed    = "Could not delete the file."
)

// writeServiceError translates the service error taxonomy to HTTP.
// Unknown errors are reported as INTERNAL_ERROR without details.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "JOURNAL_NOT_FOUND", MsgJournalNotFound)
	case errors.Is(err, service.ErrNoCachedDocument):
		return writeError(c, fiber.StatusConflict, "NO_CACHED_DOCUMENT", MsgFileNotFound)
	case errors.Is(err, service.ErrWriteFailure):
		return writeError(c, fiber.StatusInternalServerError, "WRITE_FAILED", MsgWriteFailed)
	case errors.Is(err, service.ErrDeleteFailure):
		return writeError(c, fiber.StatusInternalServerError, "DELETE_FAILED", MsgDeleteFailed)
	case errors.Is(err, service.ErrUnsupportedViewer):
		return writeError(c, fiber.StatusNotImplemented, "VIEWER_UNSUPPORTED", MsgUnsupported)
	case errors.Is(err, service.ErrOpenFailed):
		return writeError(c, fiber.StatusInternalServerError, "OPEN_FAILED", MsgOpenFailed)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
