package model

import "time"

// StudentModel mirrors the 'users' table provisioned by cmd/seed.
// student_id deliberately carries a plain (non-unique) index: the legacy
// schema never enforced uniqueness, so lookups resolve duplicates by
// surrogate id instead.
type StudentModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	StudentID    string `gorm:"column:student_id;type:varchar(255);not null;index:idx_users_student_id"`
	PasswordHash string `gorm:"column:password;type:varchar(255);not null"`
	ImageData    []byte `gorm:"column:image_data;type:bytea"`
	MimeType     string `gorm:"column:mime_type;type:varchar(255)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "users"
}
