package repositories_test

import (
	"math"
	"testing"
	"time"

	"agm_backend/internal/models"
	"agm_backend/internal/repositories"
	"agm_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNotificationRepository_FindWithFilter(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	user := helpers.CreateUser(t, db, "Filter User")
	meeting := helpers.CreateMeeting(t, db, "AGM")

	a := helpers.CreateNotification(t, db, models.UserRecipient(user.ID), "Under_score", "one")
	b := helpers.CreateNotification(t, db, models.UserRecipient(user.ID), "Back\\slash", "two")
	c := helpers.CreateNotification(t, db, models.UserRecipient(user.ID), "Plain", "three")
	require.NoError(t, db.Model(c).Updates(map[string]interface{}{"meeting_id": meeting.ID, "type": models.NotificationTypeVotingResult}).Error)

	page, total, err := repo.FindWithFilter(db, repositories.NotificationFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 3)
	assert.Equal(t, []uint{c.ID, b.ID, a.ID}, []uint{page[0].ID, page[1].ID, page[2].ID})
	require.NotNil(t, page[0].Meeting)
	require.NotNil(t, page[0].User)

	votingResult := models.NotificationTypeVotingResult
	page, total, err = repo.FindWithFilter(db, repositories.NotificationFilter{Type: &votingResult, MeetingID: &meeting.ID, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, c.ID, page[0].ID)

	_, total, err = repo.FindWithFilter(db, repositories.NotificationFilter{Search: "_", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "underscore matches literally")

	_, total, err = repo.FindWithFilter(db, repositories.NotificationFilter{Search: `\`, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "backslash matches literally")

	page, total, err = repo.FindWithFilter(db, repositories.NotificationFilter{Page: 5, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page)

	page, total, err = repo.FindWithFilter(db, repositories.NotificationFilter{Page: math.MaxInt/10 + 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, page, "a page whose offset would overflow is past the end")

	page, _, err = repo.FindWithFilter(db, repositories.NotificationFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, a.ID, page[0].ID)
}

func TestNotificationRepository_ReadAndSent(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := repositories.NewNotificationRepository()

	user := helpers.CreateUser(t, db, "Flags")
	n := helpers.CreateNotification(t, db, models.UserRecipient(user.ID), "t", "m")

	require.NoError(t, repo.SetRead(db, n.ID, true))
	require.NoError(t, repo.SetSent(db, n.ID, true))
	got, err := repo.FindByID(db, n.ID)
	require.NoError(t, err)
	assert.True(t, got.IsRead)
	assert.NotNil(t, got.ReadAt)
	assert.True(t, got.IsSent)
	assert.NotNil(t, got.SentAt)

	count, err := repo.CountUnread(db, models.UserRecipient(user.ID))
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.SetRead(db, n.ID, false))
	got, err = repo.FindByID(db, n.ID)
	require.NoError(t, err)
	assert.False(t, got.IsRead)
	assert.Nil(t, got.ReadAt)

	assert.ErrorIs(t, repo.SetRead(db, 9999, true), repositories.ErrNotificationNotFound)
	assert.ErrorIs(t, repo.Delete(db, 9999), repositories.ErrNotificationNotFound)
	_, err = repo.FindByID(db, 9999)
	assert.ErrorIs(t, err, repositories.ErrNotificationNotFound)

	_, err = repo.CountUnread(db, models.Recipient{})
	assert.ErrorIs(t, err, repositories.ErrRecipientRequired)
	_, err = repo.MarkAllAsRead(db, models.Recipient{})
	assert.ErrorIs(t, err, repositories.ErrRecipientRequired)
}

func TestReadFields(t *testing.T) {
	now := time.Now()

	assert.Equal(t, map[string]interface{}{"is_read": true, "read_at": now}, repositories.ReadFields(true, now))
	assert.Equal(t, map[string]interface{}{"is_read": false, "read_at": nil}, repositories.ReadFields(false, now))
	assert.Equal(t, map[string]interface{}{"is_sent": true, "sent_at": now}, repositories.SentFields(true, now))
}

func TestEntityRepositories_Exists(t *testing.T) {
	db := helpers.NewTestDB(t)

	user := helpers.CreateUser(t, db, "X")
	shareholder := helpers.CreateShareholder(t, db, "Y")
	meeting := helpers.CreateMeeting(t, db, "AGM")

	tests := []struct {
		name   string
		exists func(db *gorm.DB, id uint) (bool, error)
		id     uint
	}{
		{"user", repositories.NewUserRepository().Exists, user.ID},
		{"shareholder", repositories.NewShareholderRepository().Exists, shareholder.ID},
		{"meeting", repositories.NewMeetingRepository().Exists, meeting.ID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := tt.exists(db, tt.id)
			require.NoError(t, err)
			assert.True(t, found)

			found, err = tt.exists(db, tt.id+1000)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}
