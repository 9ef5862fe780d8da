package database

import (
	"fmt"

	"cafe-manager/config"
	"cafe-manager/model"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres and verifies the connection. TranslateError is
// on so uniqueness conflicts surface as gorm.ErrDuplicatedKey instead of
// driver-specific errors.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql db handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the three tables and their constraints.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Cafe{},
		&model.Employee{},
		&model.EmployeeCafe{},
	)
	if err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	log.Info().Msg("database migrated")
	return nil
}
