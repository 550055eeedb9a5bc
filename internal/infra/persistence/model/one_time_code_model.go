package model

import "time"

// OneTimeCodeModel mirrors the 'one_time_codes' table.
// The unique index on UserID keeps one current code per account; resends
// upsert onto the same row.
type OneTimeCodeModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"uniqueIndex;not null"`
	Code      string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OneTimeCodeModel) TableName() string {
	return "one_time_codes"
}
