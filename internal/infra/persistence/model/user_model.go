package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Name      string `gorm:"type:varchar(100);not null"`
	Status    string `gorm:"type:varchar(20);not null;default:'PRE_ACTIVE'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Phone   *PhoneModel       `gorm:"foreignKey:UserID"`
	Image   *ImageModel       `gorm:"foreignKey:UserID"`
	Setting *UserSettingModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PhoneModel mirrors the 'phones' table. Phone values are unique across accounts.
type PhoneModel struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	UserID int64  `gorm:"uniqueIndex;not null"`
	Phone  string `gorm:"type:varchar(20);unique;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PhoneModel) TableName() string {
	return "phones"
}

// UserSettingModel mirrors the 'user_settings' table, one row per account.
type UserSettingModel struct {
	ID                        int64 `gorm:"primaryKey;autoIncrement"`
	UserID                    int64 `gorm:"uniqueIndex;not null"`
	EnableEmailNotification   bool  `gorm:"not null;default:false"`
	EnableOrderNotification   bool  `gorm:"not null;default:false"`
	EnableGeneralNotification bool  `gorm:"not null;default:true"`
}

// TableName explicitly sets the table name for GORM.
func (UserSettingModel) TableName() string {
	return "user_settings"
}
