package models

type User struct {
	BaseModel
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName string `gorm:"type:varchar(255);not null"`
}
