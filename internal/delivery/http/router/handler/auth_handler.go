// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"

	"campusid/internal/delivery/http/response"
	domainerrors "campusid/internal/domain/errors"
	"campusid/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the login endpoint.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Login handles the credential-verification request. Every outcome comes back
// as the flat five-key envelope at HTTP 200; only the body distinguishes
// success from failure.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		// A body we cannot read is the same as missing fields.
		return response.LoginFailure(c, domainerrors.ErrValidationFailed.Message())
	}

	if err := c.Validate(&input); err != nil {
		// Tag-level rejection (absent field) collapses onto the same
		// envelope message as the whitespace check downstream.
		return response.LoginFailure(c, domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Authenticate(c.Request().Context(), &input)
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return response.LoginFailure(c, appErr.Message())
		}

		// The usecase wraps everything it knows about; reaching this
		// branch means something genuinely unexpected happened.
		h.logger.Error("Unexpected authentication error", slog.Any("error", err))

		return response.LoginFailure(c, domainerrors.ErrInternalError.Message())
	}

	return response.LoginSuccess(c, output.StudentID, output.ImageData, output.MimeType)
}
