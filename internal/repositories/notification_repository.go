package repositories

import (
	"errors"
	"strings"
	"time"

	"agm_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrRecipientRequired    = errors.New("recipient required")
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *models.Notification) error
	FindByID(db *gorm.DB, id uint) (*models.Notification, error)
	FindWithFilter(db *gorm.DB, filter NotificationFilter) ([]models.Notification, int64, error)
	FindByMeeting(db *gorm.DB, meetingID uint) ([]models.Notification, error)
	CountUnread(db *gorm.DB, recipient models.Recipient) (int64, error)
	Update(db *gorm.DB, id uint, fields map[string]interface{}) error
	SetRead(db *gorm.DB, id uint, read bool) error
	SetSent(db *gorm.DB, id uint, sent bool) error
	MarkAllAsRead(db *gorm.DB, recipient models.Recipient) (int64, error)
	Delete(db *gorm.DB, id uint) error
}

type NotificationRepositoryImpl struct{}

// NotificationFilter narrows a notification listing. Nil pointers and an
// empty Search are ignored. Page is 1-based.
type NotificationFilter struct {
	UserID        *uint
	ShareholderID *uint
	MeetingID     *uint
	Type          *models.NotificationType
	IsRead        *bool
	IsSent        *bool
	Search        string
	Page          int
	Limit         int
}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) Create(db *gorm.DB, notification *models.Notification) error {
	return db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := withRelations(db).First(&notification, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindWithFilter returns one page of matches, newest first, and the total
// number of matches. Callers wanting the two to agree run it inside a
// transaction.
func (r *NotificationRepositoryImpl) FindWithFilter(db *gorm.DB, filter NotificationFilter) ([]models.Notification, int64, error) {
	query := applyNotificationFilter(db.Model(&models.Notification{}), filter).Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	notifications := []models.Notification{}
	if total == 0 || pastLastPage(total, filter.Page, filter.Limit) {
		return notifications, total, nil
	}

	err := withRelations(query).
		Order("created_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset((filter.Page - 1) * filter.Limit).
		Find(&notifications).Error

	return notifications, total, err
}

// pastLastPage reports whether page starts after the last match. It never
// forms the offset, so an absurd page number cannot overflow it.
func pastLastPage(total int64, page, limit int) bool {
	if limit <= 0 {
		return false
	}
	lastPage := (total + int64(limit) - 1) / int64(limit)
	return int64(page)-1 >= lastPage
}

func (r *NotificationRepositoryImpl) FindByMeeting(db *gorm.DB, meetingID uint) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := db.Preload("User").Preload("Shareholder").
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").Order("id DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *NotificationRepositoryImpl) CountUnread(db *gorm.DB, recipient models.Recipient) (int64, error) {
	if recipient.IsNone() {
		return 0, ErrRecipientRequired
	}

	var count int64
	err := db.Model(&models.Notification{}).
		Where(recipient.Column()+" = ? AND is_read = ?", recipient.ID, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) Update(db *gorm.DB, id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	result := db.Model(&models.Notification{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) SetRead(db *gorm.DB, id uint, read bool) error {
	return r.Update(db, id, ReadFields(read, time.Now()))
}

func (r *NotificationRepositoryImpl) SetSent(db *gorm.DB, id uint, sent bool) error {
	return r.Update(db, id, SentFields(sent, time.Now()))
}

// MarkAllAsRead flips every unread notification of the recipient in one
// statement and returns how many rows changed. Rows already read keep their
// read_at.
func (r *NotificationRepositoryImpl) MarkAllAsRead(db *gorm.DB, recipient models.Recipient) (int64, error) {
	if recipient.IsNone() {
		return 0, ErrRecipientRequired
	}

	result := db.Model(&models.Notification{}).
		Where(recipient.Column()+" = ? AND is_read = ?", recipient.ID, false).
		Updates(ReadFields(true, time.Now()))

	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) Delete(db *gorm.DB, id uint) error {
	result := db.Delete(&models.Notification{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// ReadFields is the column set for an is_read change; read_at follows it.
func ReadFields(read bool, now time.Time) map[string]interface{} {
	fields := map[string]interface{}{"is_read": read, "read_at": nil}
	if read {
		fields["read_at"] = now
	}
	return fields
}

// SentFields is the column set for an is_sent change; sent_at follows it.
func SentFields(sent bool, now time.Time) map[string]interface{} {
	fields := map[string]interface{}{"is_sent": sent, "sent_at": nil}
	if sent {
		fields["sent_at"] = now
	}
	return fields
}

// Helper methods

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Shareholder").Preload("Meeting")
}

func applyNotificationFilter(query *gorm.DB, filter NotificationFilter) *gorm.DB {
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.ShareholderID != nil {
		query = query.Where("shareholder_id = ?", *filter.ShareholderID)
	}
	if filter.MeetingID != nil {
		query = query.Where("meeting_id = ?", *filter.MeetingID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", *filter.Type)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.IsSent != nil {
		query = query.Where("is_sent = ?", *filter.IsSent)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where(`(LOWER(title) LIKE ? ESCAPE '\' OR LOWER(message) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
	return query
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
