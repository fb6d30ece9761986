package dto

import (
	"time"

	"agm_backend/internal/models"
)

// ---------------- Requests ----------------

type CreateNotificationRequest struct {
	UserID        *uint                   `json:"userId" validate:"omitempty,min=1"`
	ShareholderID *uint                   `json:"shareholderId" validate:"omitempty,min=1"`
	MeetingID     *uint                   `json:"meetingId" validate:"omitempty,min=1"`
	Type          models.NotificationType `json:"type" validate:"required,notification_type"`
	Title         string                  `json:"title" validate:"required,max=255"`
	Message       string                  `json:"message" validate:"required,max=5000"`
	Data          map[string]interface{}  `json:"data"`
	IsSent        *bool                   `json:"isSent"`
}

// UpdateNotificationRequest only touches fields present in the body. A null
// recipient or meeting clears it.
type UpdateNotificationRequest struct {
	UserID        Optional[uint]                   `json:"userId"`
	ShareholderID Optional[uint]                   `json:"shareholderId"`
	MeetingID     Optional[uint]                   `json:"meetingId"`
	Type          Optional[models.NotificationType] `json:"type"`
	Title         Optional[string]                 `json:"title"`
	Message       Optional[string]                 `json:"message"`
	Data          Optional[map[string]interface{}] `json:"data"`
	IsRead        Optional[bool]                   `json:"isRead"`
	IsSent        Optional[bool]                   `json:"isSent"`
}

type NotificationListQuery struct {
	Pagination
	UserID        *uint                   `form:"userId" validate:"omitempty,min=1"`
	ShareholderID *uint                   `form:"shareholderId" validate:"omitempty,min=1"`
	MeetingID     *uint                   `form:"meetingId" validate:"omitempty,min=1"`
	Type          models.NotificationType `form:"type" validate:"omitempty,notification_type"`
	IsRead        *bool                   `form:"isRead"`
	IsSent        *bool                   `form:"isSent"`
	Search        string                  `form:"search" validate:"omitempty,max=255"`
}

type RecipientFeedQuery struct {
	Pagination
	UnreadOnly bool `form:"unreadOnly"`
}

// ---------------- Responses ----------------

type UserSummary struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type ShareholderSummary struct {
	ID              uint   `json:"id"`
	ShareholderCode string `json:"shareholderCode"`
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
}

type MeetingSummary struct {
	ID          uint                 `json:"id"`
	MeetingCode string               `json:"meetingCode"`
	Title       string               `json:"title"`
	MeetingDate time.Time            `json:"meetingDate"`
	Status      models.MeetingStatus `json:"status"`
}

type NotificationResponse struct {
	ID            uint                    `json:"id"`
	UserID        *uint                   `json:"userId"`
	ShareholderID *uint                   `json:"shareholderId"`
	MeetingID     *uint                   `json:"meetingId"`
	Type          models.NotificationType `json:"type"`
	Title         string                  `json:"title"`
	Message       string                  `json:"message"`
	Data          map[string]interface{}  `json:"data"`
	IsRead        bool                    `json:"isRead"`
	ReadAt        *time.Time              `json:"readAt"`
	IsSent        bool                    `json:"isSent"`
	SentAt        *time.Time              `json:"sentAt"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`

	User        *UserSummary        `json:"user,omitempty"`
	Shareholder *ShareholderSummary `json:"shareholder,omitempty"`
	Meeting     *MeetingSummary     `json:"meeting,omitempty"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	Page          int                     `json:"page"`
	Limit         int                     `json:"limit"`
	TotalPages    int                     `json:"totalPages"`
}

type RecipientFeedResponse struct {
	NotificationListResponse
	UnreadCount int64 `json:"unreadCount"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

type MarkAllReadResponse struct {
	Count int64 `json:"count"`
}

type DeleteNotificationResponse struct {
	ID uint `json:"id"`
}
