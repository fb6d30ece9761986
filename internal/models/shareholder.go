package models

type Shareholder struct {
	BaseModel
	ShareholderCode string `gorm:"type:varchar(50);uniqueIndex;not null"`
	FullName        string `gorm:"type:varchar(255);not null"`
	Email           string `gorm:"type:varchar(255)"`
}
