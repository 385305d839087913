package types

import "time"

type CreateFriendshipRequest struct {
	FriendID uint64 `json:"friend_id" binding:"required"`
}

type FriendshipResponse struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	FriendID  uint64    `json:"friend_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
