package database

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/balitech/backend/internal/models"
)

// Connect opens the Postgres connection and migrates the three entity
// tables. Each collection is independent: no foreign keys are created
// between applications and jobs (the jobId reference is weak).
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to access database pool")
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Info().Msg("Database connection established")

	if err := db.AutoMigrate(&models.Job{}, &models.Application{}, &models.Contact{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}
	return db
}
