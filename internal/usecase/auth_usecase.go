// Package usecase defines the application's business operations and their
// input/output contracts.
package usecase

import "context"

// AuthenticateInput is the credential pair supplied by the caller.
// Bind tags cover both form posts and JSON bodies.
type AuthenticateInput struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	Password  string `json:"password" form:"password" validate:"required"`
}

// AuthenticateOutput carries the verified identity and the stored portrait.
// StudentID is the stored identifier, not the caller-supplied one. ImageData
// holds the raw blob; transport encoding is the delivery layer's concern.
type AuthenticateOutput struct {
	StudentID string
	ImageData []byte
	MimeType  string
}

// AuthUsecase verifies a student's credentials and retrieves the portrait.
type AuthUsecase interface {
	// Authenticate performs a single synchronous verification attempt.
	// Failures surface as domain errors from internal/domain/errors; store
	// diagnostics are logged, never returned.
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
}
