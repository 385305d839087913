package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (c Comment) TableName() string { return "comments" }
