package helpers

import (
	"fmt"
	"testing"
	"time"

	"agm_backend/database"
	"agm_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with every table
// migrated. It is closed when the test ends.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: database.NewGormLogger(false),
	})
	require.NoError(t, err, "open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive and serialises
	// access to it.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "migrate test database")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, fullName string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    fmt.Sprintf("user_%s@test.local", uuid.NewString()[:8]),
		FullName: fullName,
	}
	require.NoError(t, db.Create(user).Error, "create test user")
	return user
}

func CreateShareholder(t *testing.T, db *gorm.DB, fullName string) *models.Shareholder {
	t.Helper()

	shareholder := &models.Shareholder{
		ShareholderCode: "SH-" + uuid.NewString()[:8],
		FullName:        fullName,
		Email:           fmt.Sprintf("sh_%s@test.local", uuid.NewString()[:8]),
	}
	require.NoError(t, db.Create(shareholder).Error, "create test shareholder")
	return shareholder
}

func CreateMeeting(t *testing.T, db *gorm.DB, title string) *models.Meeting {
	t.Helper()

	meeting := &models.Meeting{
		MeetingCode: "AGM-" + uuid.NewString()[:8],
		Title:       title,
		MeetingDate: time.Now().Add(72 * time.Hour),
		Status:      models.MeetingStatusScheduled,
	}
	require.NoError(t, db.Create(meeting).Error, "create test meeting")
	return meeting
}

// CreateNotification inserts a row directly, bypassing the service, the way
// another part of the platform would.
func CreateNotification(t *testing.T, db *gorm.DB, recipient models.Recipient, title, message string) *models.Notification {
	t.Helper()

	userID, shareholderID := recipient.Columns()
	notification := &models.Notification{
		UserID:        userID,
		ShareholderID: shareholderID,
		Type:          models.NotificationTypeSystemAnnouncement,
		Title:         title,
		Message:       message,
		Data:          datatypes.JSON(`{"source":"test"}`),
	}
	require.NoError(t, db.Create(notification).Error, "create test notification")
	return notification
}
