package postgres

import (
	"testing"
	"time"

	"campusid/internal/domain/entity"
	"campusid/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStudentDomain(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data := &model.StudentModel{
		ID:           7,
		StudentID:    "john_doe",
		PasswordHash: "$2a$10$stored-hash",
		ImageData:    []byte{0x89, 0x50, 0x4e, 0x47},
		MimeType:     "image/png",
		CreatedAt:    created,
	}

	got := toStudentDomain(data)
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "john_doe", got.StudentID)
	assert.Equal(t, "$2a$10$stored-hash", got.PasswordHash)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got.ImageData)
	assert.Equal(t, "image/png", got.MimeType)
	assert.Equal(t, created, got.CreatedAt)
	assert.True(t, got.HasImage())
}

func TestToStudentDomain_Nil(t *testing.T) {
	assert.Nil(t, toStudentDomain(nil))
}

func TestFromStudentDomain(t *testing.T) {
	credential := &entity.StudentCredential{
		StudentID:    "jane_doe",
		PasswordHash: "$2a$10$stored-hash",
	}

	got := fromStudentDomain(credential)
	require.NotNil(t, got)
	assert.Equal(t, "jane_doe", got.StudentID)
	assert.Equal(t, "$2a$10$stored-hash", got.PasswordHash)
	assert.Empty(t, got.ImageData)
	assert.Empty(t, got.MimeType)
}

func TestFromStudentDomain_Nil(t *testing.T) {
	assert.Nil(t, fromStudentDomain(nil))
}

func TestStudentModel_TableName(t *testing.T) {
	assert.Equal(t, "users", model.StudentModel{}.TableName())
}
