package database

import (
	"errors"
	"fmt"
	"time"

	"agm_backend/internal/logger"
	"agm_backend/internal/models"

	"gorm.io/gorm"
)

const demoUserEmail = "demo.user@agm.local"

// SeedDemoData inserts one user, shareholder and meeting for local use. It
// does nothing when the demo user already exists.
func SeedDemoData(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", demoUserEmail).First(&existing).Error
		if err == nil {
			logger.Info("Demo data already present, skipping seed", "email", demoUserEmail)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for demo user: %w", err)
		}

		user := &models.User{Email: demoUserEmail, FullName: "Demo User"}
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create demo user: %w", err)
		}

		shareholder := &models.Shareholder{
			ShareholderCode: "SH-0001",
			FullName:        "Demo Shareholder",
			Email:           "demo.shareholder@agm.local",
		}
		if err := tx.Create(shareholder).Error; err != nil {
			return fmt.Errorf("failed to create demo shareholder: %w", err)
		}

		meeting := &models.Meeting{
			MeetingCode: "AGM-" + time.Now().Format("2006"),
			Title:       "Annual General Meeting",
			MeetingDate: time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour),
			Status:      models.MeetingStatusScheduled,
		}
		if err := tx.Create(meeting).Error; err != nil {
			return fmt.Errorf("failed to create demo meeting: %w", err)
		}

		logger.Info("Demo data seeded",
			"user_id", user.ID,
			"shareholder_id", shareholder.ID,
			"meeting_id", meeting.ID,
		)
		return nil
	})
}
