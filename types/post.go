package types

import "time"

type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type UpdatePostRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
}

type PostResponse struct {
	ID           uint64    `json:"id"`
	UserID       uint64    `json:"user_id"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url"`
	LikeCount    int64     `json:"like_count"`
	CommentCount int64     `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListPostsResponse struct {
	Posts []*PostResponse `json:"posts"`
}
