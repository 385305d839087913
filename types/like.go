package types

// CreateLikeRequest 点赞目标: post_id 与 comment_id 二选一
type CreateLikeRequest struct {
	PostID    *uint64 `json:"post_id"`
	CommentID *uint64 `json:"comment_id"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}
