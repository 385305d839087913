package types

import "time"

type CreateMessageRequest struct {
	RecipientID uint64 `json:"recipient_id" binding:"required"`
	Text        string `json:"text" binding:"required"`
}

type MessageResponse struct {
	ID          uint64     `json:"id"`
	SenderID    uint64     `json:"sender_id"`
	RecipientID uint64     `json:"recipient_id"`
	Text        string     `json:"text"`
	IsRead      bool       `json:"is_read"`
	CreatedAt   time.Time  `json:"created_at"`
	ReadAt      *time.Time `json:"read_at"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
