package config

import (
	"errors"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/resumeai/backend/internal/models"
)

var PostgresDB *gorm.DB

func InitPostgres() error {
	uri := os.Getenv("POSTGRES_URI")
	if uri == "" {
		return errors.New("POSTGRES_URI environment variable is not set")
	}

	// TranslateError lets the repositories distinguish duplicate-key
	// violations (gorm.ErrDuplicatedKey) from everything else.
	db, err := gorm.Open(postgres.Open(uri), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection Pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.WorkExperience{},
		&models.Education{},
		&models.Link{},
		&models.ResumeFile{},
		&models.JobDescription{},
		&models.SkillMatch{},
		&models.ProjectMatch{},
		&models.ExperienceMatch{},
	); err != nil {
		return err
	}

	PostgresDB = db
	return nil
}
