package cache

import (
	"Pulse/pkg/log"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// ErrEntryMissing 更新时条目不存在(主库与缓存已出现漂移)
var ErrEntryMissing = errors.New("feed entry missing")

// FeedEntry 信息流条目, 键为 (author_id, post_id), 按 created_at 排序
// 每条存活帖子在作者的信息流中有且仅有一条, 不会被重建键
type FeedEntry struct {
	AuthorID  uint64       `json:"author_id"`
	PostID    uint64       `json:"post_id"`
	CreatedAt int64        `json:"created_at"`
	Snapshot  PostSnapshot `json:"snapshot"`
}

// FeedStorage 维护按作者分区的倒序信息流
// 目前只扇出到作者本人, 粉丝扇出留作后续扩展
type FeedStorage struct {
	store Store
}

func NewFeedStorage(store Store) *FeedStorage {
	return &FeedStorage{store: store}
}

// OnPostCreated 发帖落库后调用
func (f *FeedStorage) OnPostCreated(ctx context.Context, authorID, postID uint64, createdAt time.Time, snap PostSnapshot) error {
	fields := snapshotFields(snap)
	fields["created_at"] = strconv.FormatInt(createdAt.Unix(), 10)

	if err := f.store.Insert(ctx, f.entryKey(authorID, postID), fields); err != nil {
		return err
	}
	return f.store.AddToIndex(ctx, f.indexKey(authorID),
		strconv.FormatUint(postID, 10), float64(createdAt.Unix()))
}

// OnPostUpdated 编辑落库后刷新快照, created_at 不变, 条目不重排
// 条目缺失时返回 ErrEntryMissing, 由协调器记录
func (f *FeedStorage) OnPostUpdated(ctx context.Context, authorID, postID uint64, snap PostSnapshot) error {
	key := f.entryKey(authorID, postID)
	existing, err := f.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrEntryMissing
	}
	return f.store.Update(ctx, key, snapshotFields(snap))
}

// OnPostDeleted 删帖落库后移除条目, 幂等
func (f *FeedStorage) OnPostDeleted(ctx context.Context, authorID, postID uint64) error {
	if err := f.store.RemoveFromIndex(ctx, f.indexKey(authorID),
		strconv.FormatUint(postID, 10)); err != nil {
		return err
	}
	return f.store.Delete(ctx, f.entryKey(authorID, postID))
}

// FeedFor 按 created_at 倒序分页返回作者的信息流
func (f *FeedStorage) FeedFor(ctx context.Context, authorID uint64, skip, limit int64) ([]*FeedEntry, error) {
	members, err := f.store.ScanOrdered(ctx, f.indexKey(authorID), skip, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*FeedEntry, 0, len(members))
	for _, m := range members {
		postID, err := strconv.ParseUint(m.Member, 10, 64)
		if err != nil {
			continue
		}

		fields, err := f.store.Get(ctx, f.entryKey(authorID, postID))
		if err != nil {
			return nil, err
		}
		if fields == nil {
			// 索引与条目不一致, 读路径返回已有数据
			log.L.Warn("feed snapshot missing",
				zap.Uint64("author_id", authorID),
				zap.Uint64("post_id", postID))
			continue
		}

		entries = append(entries, &FeedEntry{
			AuthorID:  authorID,
			PostID:    postID,
			CreatedAt: int64(m.Score),
			Snapshot:  snapshotFromFields(fields),
		})
	}
	return entries, nil
}

// feed:entry:{authorID}:{postID}
func (f *FeedStorage) entryKey(authorID, postID uint64) string {
	return fmt.Sprintf("feed:entry:%d:%d", authorID, postID)
}

// feed:user:{authorID}
func (f *FeedStorage) indexKey(authorID uint64) string {
	return fmt.Sprintf("feed:user:%d", authorID)
}

func snapshotFields(snap PostSnapshot) map[string]string {
	return map[string]string{
		"content":         snap.Content,
		"image_url":       snap.ImageURL,
		"author_id":       strconv.FormatUint(snap.AuthorID, 10),
		"author_username": snap.AuthorUsername,
	}
}
