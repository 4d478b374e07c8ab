package model

import "time"

type Video struct {
	ID uint64 `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string `gorm:"column:description;type:text;not null" json:"description"`

	// ObjectName is the storage locator of the backing media object.
	ObjectName string `gorm:"column:object_name;type:varchar(512);not null" json:"-"`

	// Likes mirrors the number of like rows for this video and is
	// maintained incrementally inside the toggle transaction.
	Likes int64 `gorm:"column:likes;not null;default:0" json:"likes"`

	UploaderID uint64 `gorm:"column:uploader_id;not null;index" json:"uploader_id"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name.
func (Video) TableName() string {
	return "videos"
}
