package repositories

import (
	"agm_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Exists(db *gorm.DB, id uint) (bool, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Exists(db *gorm.DB, id uint) (bool, error) {
	return exists[models.User](db, id)
}
