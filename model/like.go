package model

import "time"

// Like is an existence-only record: a row means the user currently
// likes the video. The uk_user_video index is the insert-time guard
// that keeps the pair unique under concurrent toggles.
type Like struct {
	ID uint64 `gorm:"primaryKey"`

	UserID  uint64 `gorm:"column:user_id;not null;uniqueIndex:uk_user_video,priority:1"`
	VideoID uint64 `gorm:"column:video_id;not null;uniqueIndex:uk_user_video,priority:2"`

	CreatedAt time.Time
}

// TableName returns the database table name.
func (Like) TableName() string {
	return "likes"
}
