// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"campusid/config"
	deliverycontext "campusid/internal/delivery/context"
	domainerrors "campusid/internal/domain/errors"
	"campusid/internal/domain/repository"
	"campusid/internal/domain/service"
	"campusid/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultQueryTimeout = 3 * time.Second

// authService implements the AuthUsecase interface.
type authService struct {
	studentRepo  repository.StudentRepository
	hasher       service.PasswordHasher
	queryTimeout time.Duration
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	StudentRepo repository.StudentRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	queryTimeout := defaultQueryTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.QueryTimeout > 0 {
		queryTimeout = params.Config.Auth.QueryTimeout
	}

	return &authService{
		studentRepo:  params.StudentRepo,
		hasher:       params.Hasher,
		queryTimeout: queryTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the supplied credentials against the store and, on
// success, returns the stored identifier with the portrait blob.
func (srv *authService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	studentID := strings.TrimSpace(input.StudentID)
	password := strings.TrimSpace(input.Password)

	// Validation is a hard stop: the store is never queried with blank
	// credentials.
	if studentID == "" || password == "" {
		srv.log(ctx).Debug("Authentication rejected on validation")

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing student id or password")
	}

	srv.log(ctx).Debug("Starting authentication", slog.String("studentID", studentID))

	// Bound the lookup so a stalled store cannot hold the request open.
	queryCtx, cancel := context.WithTimeout(ctx, srv.queryTimeout)
	defer cancel()

	student, err := srv.studentRepo.FindByStudentID(queryCtx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			// Same outcome as a wrong password so callers cannot probe
			// which identifiers exist.
			srv.log(ctx).Warn("Authentication failed", slog.String("studentID", studentID))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
		}

		// Full diagnostics stay in the log; the caller only sees the
		// generic store-failure message.
		srv.log(ctx).Error("Credential lookup failed",
			slog.String("studentID", studentID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrStoreFailure, "credential lookup failed")
	}

	if !srv.hasher.Check(password, student.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("studentID", studentID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed")
	}

	srv.log(ctx).Debug("Authentication succeeded",
		slog.String("studentID", student.StudentID),
		slog.Bool("hasImage", student.HasImage()),
	)

	return &usecase.AuthenticateOutput{
		StudentID: student.StudentID,
		ImageData: student.ImageData,
		MimeType:  student.MimeType,
	}, nil
}
