// Command seed provisions the users table and writes a sample student so the
// login endpoint can be exercised against a fresh database.
package main

import (
	"context"
	"encoding/base64"
	"flag"
	"log/slog"
	"os"
	"time"

	"campusid/config"
	"campusid/internal/domain/entity"
	"campusid/internal/infra/auth"
	logs "campusid/internal/infra/log"
	"campusid/internal/infra/persistence/postgres"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

const seedTimeout = 30 * time.Second

// A 1x1 transparent PNG, the smallest portrait that still round-trips
// through the image pipeline.
const defaultPortraitBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mP8/wcAAwAB/AN19FNsAAAAASUVORK5CYII="

func main() {
	studentID := flag.String("student", "", "student identifier to seed (defaults to config, then john_doe)")
	password := flag.String("password", "", "plaintext password to hash and store")
	imagePath := flag.String("image", "", "path to a portrait file (defaults to an embedded 1x1 PNG)")
	mimeType := flag.String("mime", "", "media type of the portrait")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	seed := resolveSeed(cfg, *studentID, *password, *imagePath, *mimeType)

	if err := run(cfg, logger, seed); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Seeding completed", slog.String("studentID", seed.StudentID))
}

type seedInput struct {
	StudentID string
	Password  string
	ImagePath string
	MimeType  string
}

// resolveSeed layers flags over config over the historical defaults.
func resolveSeed(cfg *config.Config, studentID, password, imagePath, mimeType string) seedInput {
	seed := seedInput{
		StudentID: "john_doe",
		Password:  "testpassword123",
		MimeType:  "image/png",
	}

	if cfg.Seed != nil {
		if cfg.Seed.StudentID != "" {
			seed.StudentID = cfg.Seed.StudentID
		}
		if cfg.Seed.Password != "" {
			seed.Password = cfg.Seed.Password
		}
		if cfg.Seed.ImagePath != "" {
			seed.ImagePath = cfg.Seed.ImagePath
		}
		if cfg.Seed.MimeType != "" {
			seed.MimeType = cfg.Seed.MimeType
		}
	}

	if studentID != "" {
		seed.StudentID = studentID
	}
	if password != "" {
		seed.Password = password
	}
	if imagePath != "" {
		seed.ImagePath = imagePath
	}
	if mimeType != "" {
		seed.MimeType = mimeType
	}

	return seed
}

func run(cfg *config.Config, logger *slog.Logger, seed seedInput) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Info("Schema is up to date")

	imageData, err := loadPortrait(seed.ImagePath)
	if err != nil {
		return err
	}

	hasher := auth.NewBcryptHasher(cfg)
	passwordHash, err := hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	provisioner := postgres.NewStudentProvisioner(db)

	return provisioner.UpsertStudent(ctx, &entity.StudentCredential{
		StudentID:    seed.StudentID,
		PasswordHash: passwordHash,
		ImageData:    imageData,
		MimeType:     seed.MimeType,
	})
}

func loadPortrait(path string) ([]byte, error) {
	if path == "" {
		return base64.StdEncoding.DecodeString(defaultPortraitBase64)
	}

	return os.ReadFile(path)
}
