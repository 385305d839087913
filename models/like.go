package models

import "time"

// Like 点赞记录
// 目标是帖子或评论二选一: post_id 与 comment_id 有且仅有一个非空
// 唯一键: user_id + post_id / user_id + comment_id
type Like struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1;uniqueIndex:uk_user_comment,priority:1" json:"user_id"`
	PostID    *uint64   `gorm:"column:post_id;uniqueIndex:uk_user_post,priority:2;check:check_like_target,(post_id IS NULL) <> (comment_id IS NULL)" json:"post_id"`
	CommentID *uint64   `gorm:"column:comment_id;uniqueIndex:uk_user_comment,priority:2" json:"comment_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (l Like) TableName() string { return "likes" }
