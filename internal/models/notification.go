package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is addressed to a user or a shareholder and optionally scoped
// to a meeting. ReadAt and SentAt track IsRead and IsSent.
type Notification struct {
	BaseModel
	UserID        *uint            `gorm:"index"`
	ShareholderID *uint            `gorm:"index"`
	MeetingID     *uint            `gorm:"index"`
	Type          NotificationType `gorm:"type:varchar(40);not null;index"`
	Title         string           `gorm:"type:varchar(255);not null"`
	Message       string           `gorm:"type:text;not null"`
	Data          datatypes.JSON
	IsRead        bool `gorm:"not null;default:false;index"`
	ReadAt        *time.Time
	IsSent        bool `gorm:"not null;default:false"`
	SentAt        *time.Time

	// Relations
	User        *User        `gorm:"foreignKey:UserID"`
	Shareholder *Shareholder `gorm:"foreignKey:ShareholderID"`
	Meeting     *Meeting     `gorm:"foreignKey:MeetingID"`
}
