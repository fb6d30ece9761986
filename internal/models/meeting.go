package models

import "time"

type Meeting struct {
	BaseModel
	MeetingCode string        `gorm:"type:varchar(50);uniqueIndex;not null"`
	Title       string        `gorm:"type:varchar(255);not null"`
	MeetingDate time.Time     `gorm:"not null"`
	Status      MeetingStatus `gorm:"type:varchar(20);not null;default:'SCHEDULED'"`
}
