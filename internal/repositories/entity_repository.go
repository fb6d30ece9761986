package repositories

import "gorm.io/gorm"

// exists reports whether a row of T with the given primary key is present.
func exists[T any](db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(new(T)).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
