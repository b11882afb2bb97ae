// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"campusid/internal/domain/entity"
)

// ErrStudentNotFound is a domain-specific error returned when no record matches an identifier.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepository defines the read-only operations the auth flow needs.
// The application layer depends on this interface, not the concrete implementation.
type StudentRepository interface {
	// FindByStudentID retrieves the credential record for an identifier.
	// The identifier is not unique at the schema level; when several rows
	// match, the one with the lowest surrogate id wins, so repeated calls
	// against an unchanged store always return the same record.
	// Returns ErrStudentNotFound when no row matches.
	FindByStudentID(ctx context.Context, studentID string) (*entity.StudentCredential, error)
}

// StudentProvisioner defines the write operations used by the provisioning
// command. The login flow never sees this interface; it stays read-only.
type StudentProvisioner interface {
	// UpsertStudent inserts the record, or replaces the hash, portrait and
	// media type of the first existing record with the same identifier.
	UpsertStudent(ctx context.Context, student *entity.StudentCredential) error
}
