package model

import "time"

// UserRecordModel mirrors the 'user_records' table, keyed by the identity UID.
type UserRecordModel struct {
	UID         string `gorm:"type:varchar(128);primaryKey"`
	Email       string `gorm:"type:varchar(255);not null"`
	DisplayName string `gorm:"type:varchar(100);not null;default:''"`
	PhotoURL    string `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserRecordModel) TableName() string {
	return "user_records"
}
