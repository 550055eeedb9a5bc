package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;index"`
	RecipientName string `gorm:"type:varchar(100);not null"`
	Address       string `gorm:"type:text;not null"`
	City          string `gorm:"type:varchar(100);not null"`
	ZipCode       int    `gorm:"not null"`
	Country       string `gorm:"type:varchar(100);not null"`
	Phone         string `gorm:"type:varchar(20);not null"`
	Default       bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
