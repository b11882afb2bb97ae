// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// StudentCredential represents one enrolled account as the store sees it.
// The handler only ever reads these records; creation happens through the
// provisioning command.
type StudentCredential struct {
	ID           uint      // Surrogate primary key assigned by the store.
	StudentID    string    // The student's lookup identifier, treated as an opaque string.
	PasswordHash string    // Stores the bcrypt-hashed password, never the plaintext.
	ImageData    []byte    // Optional portrait blob; empty when no portrait was provisioned.
	MimeType     string    // Media type of ImageData, e.g. "image/png". Meaningless without ImageData.
	CreatedAt    time.Time // Timestamp of when this record was provisioned.
}

// HasImage reports whether a portrait was stored for this account.
func (s *StudentCredential) HasImage() bool {
	return len(s.ImageData) > 0
}
