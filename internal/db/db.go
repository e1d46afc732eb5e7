package db

import (
	"fmt"
	"time"

	"github.com/windoze95/pantrychef-api/internal/config"
	"github.com/windoze95/pantrychef-api/internal/logger"
	"github.com/windoze95/pantrychef-api/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New creates a new database connection and migrates the schema. It returns
// nil, nil when no database is configured.
func New(cfg *config.Config) (*gorm.DB, error) {
	if cfg.EnvVars.DatabaseUrl == "" {
		return nil, nil
	}
	database, err := connectToDatabaseWithRetry(cfg.EnvVars.DatabaseUrl, time.Minute, 5*time.Second)
	if err != nil {
		return nil, err
	}
	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

// connectToDatabaseWithRetry connects to the database and retries until
// timeout elapses.
func connectToDatabaseWithRetry(databaseURL string, timeout, interval time.Duration) (*gorm.DB, error) {
	logger.Get().Info("connecting to database")
	var database *gorm.DB
	var err error

	start := time.Now()
	for {
		database, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Since(start) > timeout {
			return nil, fmt.Errorf("could not connect to database after %s: %w", timeout, err)
		}
		logger.Get().Warn("could not connect to database, retrying...", zap.Error(err))
		time.Sleep(interval)
	}

	return database, nil
}

// Migrate creates or updates the saved recipe table and its unique
// (collection, meal) index.
func Migrate(database *gorm.DB) error {
	if err := database.AutoMigrate(&models.SavedRecipe{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
