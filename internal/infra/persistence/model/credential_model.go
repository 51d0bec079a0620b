package model

import "time"

// CredentialModel mirrors the 'credentials' table used by the built-in identity provider.
type CredentialModel struct {
	UID              string `gorm:"type:varchar(128);primaryKey"`
	Email            string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash     string `gorm:"type:varchar(255);not null"`
	DisplayName      string `gorm:"type:varchar(100);not null;default:''"`
	PhotoURL         string `gorm:"type:text;not null;default:''"`
	Disabled         bool   `gorm:"not null;default:false"`
	TokensValidAfter time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CredentialModel) TableName() string {
	return "credentials"
}
