package repositories

import (
	"agm_backend/internal/models"

	"gorm.io/gorm"
)

type ShareholderRepository interface {
	Exists(db *gorm.DB, id uint) (bool, error)
}

type ShareholderRepositoryImpl struct{}

func NewShareholderRepository() ShareholderRepository {
	return &ShareholderRepositoryImpl{}
}

func (r *ShareholderRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	return exists[models.Shareholder](db, id)
}
