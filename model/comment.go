package model

import "time"

type Comment struct {
	ID uint64 `gorm:"primaryKey"`

	VideoID uint64 `gorm:"column:video_id;not null;index"`
	UserID  uint64 `gorm:"column:user_id;not null"`

	Content string `gorm:"column:content;type:text;not null"`

	// CreatedAt is assigned by the server clock at insert time.
	CreatedAt time.Time
}

// TableName returns the database table name.
func (Comment) TableName() string {
	return "comments"
}
