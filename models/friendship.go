package models

import "time"

// 好友关系状态
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipDeclined = "declined"
)

// Friendship 好友请求/关系
// user_id 发起方, friend_id 接收方
type Friendship struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_friend,priority:1" json:"user_id"`
	FriendID  uint64    `gorm:"column:friend_id;not null;uniqueIndex:uk_user_friend,priority:2" json:"friend_id"`
	Status    string    `gorm:"column:status;type:varchar(16);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (f Friendship) TableName() string { return "friendships" }
