package types

import "time"

type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type CommentResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	PostID    uint64    `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
