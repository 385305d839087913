package cache

import (
	"Pulse/pkg/log"
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// 热门榜排序索引, 分值即点赞数
const popularIndexKey = "popular:posts"

// PostSnapshot 帖子的去范式化快照
// 写入时的点位拷贝, 不随后续编辑自动刷新
type PostSnapshot struct {
	Content        string `json:"content"`
	ImageURL       string `json:"image_url"`
	AuthorID       uint64 `json:"author_id"`
	AuthorUsername string `json:"author_username"`
}

// PopularityEntry 热门榜条目
// 不变式: 条目存在当且仅当 score > 0
type PopularityEntry struct {
	PostID    uint64       `json:"post_id"`
	Score     int64        `json:"score"`
	Snapshot  PostSnapshot `json:"snapshot"`
	UpdatedAt int64        `json:"updated_at"`
}

// PopularityStorage 按点赞量维护帖子热门榜
type PopularityStorage struct {
	store Store
}

func NewPopularityStorage(store Store) *PopularityStorage {
	return &PopularityStorage{store: store}
}

// OnPostLiked 点赞落库后调用
// 首次点赞时写入快照, 之后只加分并刷新 updated_at, 快照保持首次写入的版本
func (p *PopularityStorage) OnPostLiked(ctx context.Context, postID uint64, snap PostSnapshot) error {
	member := strconv.FormatUint(postID, 10)
	score, err := p.store.ApplyDelta(ctx, popularIndexKey, member, 1)
	if err != nil {
		return err
	}

	now := strconv.FormatInt(time.Now().Unix(), 10)
	if score <= 1 {
		return p.store.Insert(ctx, p.entryKey(postID), map[string]string{
			"content":         snap.Content,
			"image_url":       snap.ImageURL,
			"author_id":       strconv.FormatUint(snap.AuthorID, 10),
			"author_username": snap.AuthorUsername,
			"updated_at":      now,
		})
	}
	return p.store.Update(ctx, p.entryKey(postID), map[string]string{"updated_at": now})
}

// OnPostUnliked 取消点赞落库后调用
// 减到 0 时整条移除: 零赞的帖子不在榜上
// 对未上榜帖子的调用净效果为空操作
func (p *PopularityStorage) OnPostUnliked(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	score, err := p.store.ApplyDelta(ctx, popularIndexKey, member, -1)
	if err != nil {
		return err
	}

	if score <= 0 {
		if err := p.store.RemoveFromIndex(ctx, popularIndexKey, member); err != nil {
			return err
		}
		return p.store.Delete(ctx, p.entryKey(postID))
	}
	return p.store.Update(ctx, p.entryKey(postID), map[string]string{
		"updated_at": strconv.FormatInt(time.Now().Unix(), 10),
	})
}

// OnPostDeleted 帖子删除后调用, 无论当前分值直接移除, 幂等
func (p *PopularityStorage) OnPostDeleted(ctx context.Context, postID uint64) error {
	member := strconv.FormatUint(postID, 10)
	if err := p.store.RemoveFromIndex(ctx, popularIndexKey, member); err != nil {
		return err
	}
	return p.store.Delete(ctx, p.entryKey(postID))
}

// TopN 按分值倒序返回至多 n 条热门帖子, 同分按 updated_at 较新者优先
// 并发写入下不保证严格全序
func (p *PopularityStorage) TopN(ctx context.Context, n int64) ([]*PopularityEntry, error) {
	members, err := p.store.ScanOrdered(ctx, popularIndexKey, 0, n)
	if err != nil {
		return nil, err
	}

	entries := make([]*PopularityEntry, 0, len(members))
	for _, m := range members {
		postID, err := strconv.ParseUint(m.Member, 10, 64)
		if err != nil {
			continue
		}

		fields, err := p.store.Get(ctx, p.entryKey(postID))
		if err != nil {
			return nil, err
		}
		if fields == nil {
			// 索引与快照不一致, 读路径返回已有数据
			log.L.Warn("popularity snapshot missing",
				zap.Uint64("post_id", postID))
			continue
		}

		entries = append(entries, &PopularityEntry{
			PostID:    postID,
			Score:     int64(m.Score),
			Snapshot:  snapshotFromFields(fields),
			UpdatedAt: parseInt(fields["updated_at"]),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UpdatedAt > entries[j].UpdatedAt
	})

	return entries, nil
}

// popular:post:{postID}
func (p *PopularityStorage) entryKey(postID uint64) string {
	return fmt.Sprintf("popular:post:%d", postID)
}

func snapshotFromFields(fields map[string]string) PostSnapshot {
	authorID, _ := strconv.ParseUint(fields["author_id"], 10, 64)
	return PostSnapshot{
		Content:        fields["content"],
		ImageURL:       fields["image_url"],
		AuthorID:       authorID,
		AuthorUsername: fields["author_username"],
	}
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
