package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "campusid/internal/delivery/context"
	"campusid/internal/delivery/http/response"
	domainerrors "campusid/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// The login handler maps its own domain errors onto the flat envelope; this
// is the safety net for everything that escapes a handler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Response{
			Success:   false,
			Code:      appErr.HTTPCode(),
			Message:   appErr.Message(),
			RequestID: deliverycontext.GetRequestID(c),
			Error: &response.ErrorInfo{
				Code: appErr.ErrorCode(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, response.Response{
			Success:   false,
			Code:      httpErr.Code,
			Message:   message,
			RequestID: deliverycontext.GetRequestID(c),
			Error: &response.ErrorInfo{
				Code: "HTTP_ERROR",
			},
		})

		return
	}

	// Anything else is unexpected: log the detail, answer with a generic
	// message only. Raw error text never reaches the caller.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.Response{
		Success:   false,
		Code:      http.StatusInternalServerError,
		Message:   domainerrors.ErrInternalError.Message(),
		RequestID: deliverycontext.GetRequestID(c),
		Error: &response.ErrorInfo{
			Code: domainerrors.ErrInternalError.ErrorCode(),
		},
	})
}
