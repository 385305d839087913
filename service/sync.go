package service

import (
	"Pulse/dao/cache"
	"Pulse/pkg/log"
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// CacheSyncService 主库变更到二级缓存的同步协调器
//
// 必须在主库事务提交之后调用, 调用时不持有主库事务的任何锁或连接
// 缓存写入失败只记录日志(操作/键/增量), 不回传给请求方:
// 主库是唯一事实来源, 缓存允许短暂漂移并可整体重建
// 基线设计不做重试/排队/后台对账
type CacheSyncService struct {
	Popularity *cache.PopularityStorage
	Feed       *cache.FeedStorage
}

// PostCreated 发帖 -> 写入作者信息流, 热门榜不动(还没有赞)
func (s *CacheSyncService) PostCreated(ctx context.Context, authorID, postID uint64, createdAt time.Time, snap cache.PostSnapshot) {
	if err := s.Feed.OnPostCreated(ctx, authorID, postID, createdAt, snap); err != nil {
		log.L.Warn("cache sync failed",
			zap.String("op", "feed.insert"),
			zap.Uint64("author_id", authorID),
			zap.Uint64("post_id", postID),
			zap.Error(err))
	}
}

// PostUpdated 编辑 -> 刷新信息流快照
// 热门榜快照有意保持旧版, 等下一次点赞/取消赞再touch(可接受的过期窗口)
func (s *CacheSyncService) PostUpdated(ctx context.Context, authorID, postID uint64, snap cache.PostSnapshot) {
	err := s.Feed.OnPostUpdated(ctx, authorID, postID, snap)
	if err == nil {
		return
	}
	if errors.Is(err, cache.ErrEntryMissing) {
		log.L.Warn("feed entry missing on update",
			zap.Uint64("author_id", authorID),
			zap.Uint64("post_id", postID))
		return
	}
	log.L.Warn("cache sync failed",
		zap.String("op", "feed.update"),
		zap.Uint64("author_id", authorID),
		zap.Uint64("post_id", postID),
		zap.Error(err))
}

// PostDeleted 删帖 -> 两个缓存都移除
func (s *CacheSyncService) PostDeleted(ctx context.Context, authorID, postID uint64) {
	if err := s.Popularity.OnPostDeleted(ctx, postID); err != nil {
		log.L.Warn("cache sync failed",
			zap.String("op", "popularity.delete"),
			zap.Uint64("post_id", postID),
			zap.Error(err))
	}
	if err := s.Feed.OnPostDeleted(ctx, authorID, postID); err != nil {
		log.L.Warn("cache sync failed",
			zap.String("op", "feed.delete"),
			zap.Uint64("author_id", authorID),
			zap.Uint64("post_id", postID),
			zap.Error(err))
	}
}

// PostLiked 帖子被点赞 -> 热门榜 +1
// 评论点赞不会走到这里
func (s *CacheSyncService) PostLiked(ctx context.Context, postID uint64, snap cache.PostSnapshot) {
	if err := s.Popularity.OnPostLiked(ctx, postID, snap); err != nil {
		log.L.Warn("cache sync failed",
			zap.String("op", "popularity.incr"),
			zap.Uint64("post_id", postID),
			zap.Int64("delta", 1),
			zap.Error(err))
	}
}

// PostUnliked 帖子被取消赞 -> 热门榜 -1
func (s *CacheSyncService) PostUnliked(ctx context.Context, postID uint64) {
	if err := s.Popularity.OnPostUnliked(ctx, postID); err != nil {
		log.L.Warn("cache sync failed",
			zap.String("op", "popularity.decr"),
			zap.Uint64("post_id", postID),
			zap.Int64("delta", -1),
			zap.Error(err))
	}
}
