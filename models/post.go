package models

import "time"

type Post struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	ImageURL  string    `gorm:"column:image_url;type:varchar(255)" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (p Post) TableName() string { return "posts" }
