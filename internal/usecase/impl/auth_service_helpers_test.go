package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"campusid/config"
	"campusid/internal/domain/entity"
	"campusid/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:   4,
			QueryTimeout: time.Second,
		},
	}

	return cfg
}

// mockStudentRepo is a testify double for repository.StudentRepository.
type mockStudentRepo struct {
	mock.Mock
}

func (m *mockStudentRepo) FindByStudentID(ctx context.Context, studentID string) (*entity.StudentCredential, error) {
	args := m.Called(ctx, studentID)
	if rec := args.Get(0); rec != nil {
		return rec.(*entity.StudentCredential), args.Error(1)
	}

	return nil, args.Error(1)
}

// mockHasher is a testify double for service.PasswordHasher.
type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	studentRepo *mockStudentRepo
	hasher      *mockHasher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	studentRepo := new(mockStudentRepo)
	hasher := new(mockHasher)

	service := NewAuthService(AuthServiceParams{
		StudentRepo: studentRepo,
		Hasher:      hasher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return authServiceFixtures{
		service:     service,
		studentRepo: studentRepo,
		hasher:      hasher,
	}
}
