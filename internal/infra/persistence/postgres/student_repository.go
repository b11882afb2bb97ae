package postgres

import (
	"context"

	"campusid/internal/domain/entity"
	domainerrors "campusid/internal/domain/errors"
	"campusid/internal/domain/repository"
	"campusid/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// studentRepository implements the repository.StudentRepository interface.
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

// FindByStudentID retrieves the credential record for an identifier.
// The identifier goes through GORM's placeholder binding, never into the
// query text. Ordering by the surrogate id makes "first match wins"
// deterministic when the legacy data contains duplicate identifiers.
func (repo *studentRepository) FindByStudentID(ctx context.Context, studentID string) (*entity.StudentCredential, error) {
	var studentM model.StudentModel

	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		First(&studentM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find student by student_id")
	}

	return toStudentDomain(&studentM), nil
}

// --- Mapper Functions ---

// toStudentDomain converts a GORM StudentModel to a domain StudentCredential entity.
func toStudentDomain(data *model.StudentModel) *entity.StudentCredential {
	if data == nil {
		return nil
	}

	return &entity.StudentCredential{
		ID:           data.ID,
		StudentID:    data.StudentID,
		PasswordHash: data.PasswordHash,
		ImageData:    data.ImageData,
		MimeType:     data.MimeType,
		CreatedAt:    data.CreatedAt,
	}
}

// fromStudentDomain converts a domain StudentCredential entity to a GORM StudentModel.
func fromStudentDomain(data *entity.StudentCredential) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:           data.ID,
		StudentID:    data.StudentID,
		PasswordHash: data.PasswordHash,
		ImageData:    data.ImageData,
		MimeType:     data.MimeType,
	}
}

// NewStudentProvisioner exposes the write side used by cmd/seed.
func NewStudentProvisioner(db *gorm.DB) repository.StudentProvisioner {
	return &studentRepository{db: db}
}

// UpsertStudent inserts or refreshes the record for the given identifier.
// Matching by student_id keeps provisioning from piling up duplicate rows
// even though the schema does not enforce uniqueness.
func (repo *studentRepository) UpsertStudent(ctx context.Context, student *entity.StudentCredential) error {
	var existing model.StudentModel

	err := repo.db.WithContext(ctx).
		Where("student_id = ?", student.StudentID).
		Order("id").
		First(&existing).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := repo.db.WithContext(ctx).Create(fromStudentDomain(student)).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to create student")
		}

		return nil
	case err != nil:
		return domainerrors.NewDatabaseExecuteError(err, "failed to look up student before upsert")
	}

	updates := map[string]any{
		"password":   student.PasswordHash,
		"image_data": student.ImageData,
		"mime_type":  student.MimeType,
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", existing.ID).
		Updates(updates).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update student")
	}

	return nil
}

// Migrate creates or updates the users table. Only cmd/seed calls this;
// the service itself assumes the schema already exists.
func Migrate(db *gorm.DB) error {
	return errors.WithStack(db.AutoMigrate(&model.StudentModel{}))
}
