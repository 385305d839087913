package types

// FeedItem 信息流条目(来自二级缓存的快照)
type FeedItem struct {
	PostID         uint64 `json:"post_id"`
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url"`
	CreatedAt      int64  `json:"created_at"`
}

// PopularPost 热门榜条目
type PopularPost struct {
	PostID         uint64 `json:"post_id"`
	Score          int64  `json:"score"`
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
	Content        string `json:"content"`
	ImageURL       string `json:"image_url"`
	UpdatedAt      int64  `json:"updated_at"`
}
