package model

import "time"

type User struct {
	ID uint64 `gorm:"primaryKey"`

	UserName string `gorm:"column:user_name;type:varchar(50);not null;unique"`

	Password string `gorm:"column:pass_word;type:varchar(255);not null" json:"-"`

	Email string `gorm:"column:email;type:varchar(255);not null"`

	CreatedAt time.Time
}

// TableName returns the database table name.
func (User) TableName() string {
	return "users"
}
