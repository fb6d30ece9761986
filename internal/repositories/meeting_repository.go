package repositories

import (
	"agm_backend/internal/models"

	"gorm.io/gorm"
)

type MeetingRepository interface {
	Exists(db *gorm.DB, id uint) (bool, error)
}

type MeetingRepositoryImpl struct{}

func NewMeetingRepository() MeetingRepository {
	return &MeetingRepositoryImpl{}
}

func (r *MeetingRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	return exists[models.Meeting](db, id)
}
