package service

import (
	"Pulse/dao/cache"
	"Pulse/types"
	"context"
)

var _ IFeedService = (*FeedService)(nil)

type IFeedService interface {
	Timeline(ctx context.Context, authorID uint64, skip, limit int64) ([]*types.FeedItem, error)
	PopularPosts(ctx context.Context, n int64) ([]*types.PopularPost, error)
}

// FeedService 二级缓存的读路径
// 读到的就是结果: 缓存漂移对用户只表现为列表短暂过期
type FeedService struct {
	Popularity *cache.PopularityStorage
	Feed       *cache.FeedStorage
}

// Timeline 作者信息流, created_at 倒序分页
func (s *FeedService) Timeline(ctx context.Context, authorID uint64, skip, limit int64) ([]*types.FeedItem, error) {
	if limit <= 0 {
		limit = int64(types.DefaultPageSize)
	}
	entries, err := s.Feed.FeedFor(ctx, authorID, skip, limit)
	if err != nil {
		return nil, err
	}

	items := make([]*types.FeedItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, &types.FeedItem{
			PostID:         e.PostID,
			AuthorID:       e.AuthorID,
			AuthorUsername: e.Snapshot.AuthorUsername,
			Content:        e.Snapshot.Content,
			ImageURL:       e.Snapshot.ImageURL,
			CreatedAt:      e.CreatedAt,
		})
	}
	return items, nil
}

// PopularPosts 热门榜前 n 条
func (s *FeedService) PopularPosts(ctx context.Context, n int64) ([]*types.PopularPost, error) {
	if n <= 0 {
		n = int64(types.DefaultPageSize)
	}
	entries, err := s.Popularity.TopN(ctx, n)
	if err != nil {
		return nil, err
	}

	items := make([]*types.PopularPost, 0, len(entries))
	for _, e := range entries {
		items = append(items, &types.PopularPost{
			PostID:         e.PostID,
			Score:          e.Score,
			AuthorID:       e.Snapshot.AuthorID,
			AuthorUsername: e.Snapshot.AuthorUsername,
			Content:        e.Snapshot.Content,
			ImageURL:       e.Snapshot.ImageURL,
			UpdatedAt:      e.UpdatedAt,
		})
	}
	return items, nil
}
