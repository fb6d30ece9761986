package database

import (
	"fmt"

	"agm_backend/internal/logger"
	"agm_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table this service reads or writes.
// Users, shareholders and meetings are owned by other services in
// production; they are migrated here so a fresh database is usable.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Shareholder{},
		&models.Meeting{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	logger.Info("AutoMigrate completed")
	return nil
}
