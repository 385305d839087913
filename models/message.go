package models

import "time"

// Message 私信
type Message struct {
	ID          uint64     `gorm:"column:id;primary_key" json:"id"`
	SenderID    uint64     `gorm:"column:sender_id;not null;index:idx_sender" json:"sender_id"`
	RecipientID uint64     `gorm:"column:recipient_id;not null;index:idx_recipient" json:"recipient_id"`
	Text        string     `gorm:"column:text;type:text;not null" json:"text"`
	IsRead      bool       `gorm:"column:is_read;not null;default:0" json:"is_read"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	ReadAt      *time.Time `gorm:"column:read_at" json:"read_at"`
}

func (m Message) TableName() string { return "messages" }
